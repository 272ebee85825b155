package category

// Region groups prefectures.
type Region int

const (
	Kanto Region = iota
	Kansai
	Chubu
	Kyushu
	Chugoku
	Tohoku
	HokkaidoRegion
	Shikoku
)

var Regions = newEnumeration("region", Localized{"Region", "地域"},
	Entry[Region]{Kanto, "Kanto", Localized{"Kanto", "関東"}, nil},
	Entry[Region]{Kansai, "Kansai", Localized{"Kansai", "関西"}, nil},
	Entry[Region]{Chubu, "Chubu", Localized{"Chubu", "中部"}, nil},
	Entry[Region]{Kyushu, "Kyushu", Localized{"Kyushu", "九州"}, nil},
	Entry[Region]{Chugoku, "Chugoku", Localized{"Chugoku", "中国"}, nil},
	Entry[Region]{Tohoku, "Tohoku", Localized{"Tohoku", "東北"}, nil},
	Entry[Region]{HokkaidoRegion, "Hokkaido", Localized{"Hokkaido", "北海道"}, nil},
	Entry[Region]{Shikoku, "Shikoku", Localized{"Shikoku", "四国"}, nil},
)

// Prefecture of residence. Input files carry the Japanese name.
type Prefecture int

const (
	Aichi Prefecture = iota
	Akita
	Aomori
	Chiba
	Ehime
	Fukui
	Fukuoka
	Fukushima
	Gifu
	Gunma
	Hiroshima
	Hokkaido
	Hyogo
	Ibaraki
	Ishikawa
	Iwate
	Kagawa
	Kagoshima
	Kanagawa
	Kochi
	Kumamoto
	Kyoto
	Mie
	Miyagi
	Miyazaki
	Nagano
	Nagasaki
	Nara
	Niigata
	Oita
	Okayama
	Okinawa
	Osaka
	Saga
	Saitama
	Shiga
	Shimane
	Shizuoka
	Tochigi
	Tokushima
	Tokyo
	Tottori
	Toyama
	Wakayama
	Yamagata
	Yamaguchi
	Yamanashi
)

type prefectureInfo struct {
	en, ja string
	region Region
}

var prefectureTable = [...]prefectureInfo{
	Aichi:     {"Aichi", "愛知県", Chubu},
	Akita:     {"Akita", "秋田県", Tohoku},
	Aomori:    {"Aomori", "青森県", Tohoku},
	Chiba:     {"Chiba", "千葉県", Kanto},
	Ehime:     {"Ehime", "愛媛県", Shikoku},
	Fukui:     {"Fukui", "福井県", Chubu},
	Fukuoka:   {"Fukuoka", "福岡県", Kyushu},
	Fukushima: {"Fukushima", "福島県", Tohoku},
	Gifu:      {"Gifu", "岐阜県", Chubu},
	Gunma:     {"Gunma", "群馬県", Kanto},
	Hiroshima: {"Hiroshima", "広島県", Chugoku},
	Hokkaido:  {"Hokkaido", "北海道", HokkaidoRegion},
	Hyogo:     {"Hyogo", "兵庫県", Kansai},
	Ibaraki:   {"Ibaraki", "茨城県", Kanto},
	Ishikawa:  {"Ishikawa", "石川県", Chubu},
	Iwate:     {"Iwate", "岩手県", Tohoku},
	Kagawa:    {"Kagawa", "香川県", Shikoku},
	Kagoshima: {"Kagoshima", "鹿児島県", Kyushu},
	Kanagawa:  {"Kanagawa", "神奈川県", Kanto},
	Kochi:     {"Kochi", "高知県", Shikoku},
	Kumamoto:  {"Kumamoto", "熊本県", Kyushu},
	Kyoto:     {"Kyoto", "京都府", Kansai},
	Mie:       {"Mie", "三重県", Kansai},
	Miyagi:    {"Miyagi", "宮城県", Tohoku},
	Miyazaki:  {"Miyazaki", "宮崎県", Kyushu},
	Nagano:    {"Nagano", "長野県", Chubu},
	Nagasaki:  {"Nagasaki", "長崎県", Kyushu},
	Nara:      {"Nara", "奈良県", Kansai},
	Niigata:   {"Niigata", "新潟県", Chubu},
	Oita:      {"Oita", "大分県", Kyushu},
	Okayama:   {"Okayama", "岡山県", Chugoku},
	Okinawa:   {"Okinawa", "沖縄県", Kyushu},
	Osaka:     {"Osaka", "大阪府", Kansai},
	Saga:      {"Saga", "佐賀県", Kyushu},
	Saitama:   {"Saitama", "埼玉県", Kanto},
	Shiga:     {"Shiga", "滋賀県", Kansai},
	Shimane:   {"Shimane", "島根県", Chugoku},
	Shizuoka:  {"Shizuoka", "静岡県", Chubu},
	Tochigi:   {"Tochigi", "栃木県", Kanto},
	Tokushima: {"Tokushima", "徳島県", Shikoku},
	Tokyo:     {"Tokyo", "東京都", Kanto},
	Tottori:   {"Tottori", "鳥取県", Chugoku},
	Toyama:    {"Toyama", "富山県", Chubu},
	Wakayama:  {"Wakayama", "和歌山県", Kansai},
	Yamagata:  {"Yamagata", "山形県", Tohoku},
	Yamaguchi: {"Yamaguchi", "山口県", Chugoku},
	Yamanashi: {"Yamanashi", "山梨県", Chubu},
}

var Prefectures = func() *Enumeration[Prefecture] {
	entries := make([]Entry[Prefecture], len(prefectureTable))
	for i, p := range prefectureTable {
		var aliases []string
		if p.en == "Niigata" {
			aliases = []string{"Nigata"}
		}
		entries[i] = Entry[Prefecture]{Prefecture(i), p.en, Localized{p.en, p.ja}, aliases}
	}
	return newEnumeration("prefecture", Localized{"Prefecture", "県"}, entries...)
}()

// RegionOf maps a prefecture to its region.
func RegionOf(p Prefecture) Region {
	if p < 0 || int(p) >= len(prefectureTable) {
		return Kanto
	}
	return prefectureTable[p].region
}
