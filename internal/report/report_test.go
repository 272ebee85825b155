package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/filter"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

const testMeta = `{"Pages":[{"Elements":[
  {"QuestionKey":"field1","Label":"媒体","Type":"checkbox","Options":[{"Value":"A","Label":"TV"},{"Value":"B","Label":"Web"}]},
  {"QuestionKey":"field2","Label":"色","Type":"radio","Options":[{"Value":"r","Label":"赤"},{"Value":"b","Label":"青"}]},
  {"QuestionKey":"field3","Label":"感想","Type":"text"},
  {"QuestionKey":"field4","Label":"<p>","Type":"html"}
]}]}`

const testHeader = "id,user_id,campaign_id,price,bonus_point,status,created_at,updated at,email,nickname,gender,birth_year,job,prefecture,marital_status,children,household_income_min,household_income_max,field1,field2,field3"

var testRows = []string{
	`p1,u1,c1,0,0,purchased,2020-07-01,,,,female,1990,学生,東京都,single,0,0,0,"[""A"",""B""]",r,good`,
	`p2,u2,c1,0,0,purchased,2020-07-02,,,,male,1980,公務員,大阪府,married,2,0,0,"[""B""]",b,`,
	`p3,u3,c1,0,0,purchased,2020-07-03,,,,female,1970,学生,大阪府,married,2,0,0,,r,"a` + "\x00" + `b"`,
}

func writeFixture(t *testing.T) (metaPath, inputPath string) {
	t.Helper()
	dir := t.TempDir()
	metaPath = filepath.Join(dir, "meta.json")
	inputPath = filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(metaPath, []byte(testMeta), 0o644))
	require.NoError(t, os.WriteFile(inputPath, []byte(testHeader+"\n"+strings.Join(testRows, "\n")+"\n"), 0o644))
	return metaPath, inputPath
}

func loadFixture(t *testing.T, opts Options) *Dataset {
	t.Helper()
	metaPath, inputPath := writeFixture(t)
	ds, err := Load(metaPath, inputPath, opts)
	require.NoError(t, err)
	return ds
}

func defaultOptions() Options {
	return Options{Lang: category.Ja, Year: 2020, IncludeText: true, Workers: 2}
}

func headers(tb table.Table) []string {
	out := make([]string, len(tb.Columns))
	for i, c := range tb.Columns {
		out[i] = c.Header.Text
	}
	return out
}

func TestLoadCleansAndNormalizes(t *testing.T) {
	ds := loadFixture(t, defaultOptions())
	require.Equal(t, 3, ds.Len())
	assert.NotEmpty(t, ds.RunID)
	assert.Equal(t, "ab", ds.Records[2].Custom[3].Str)
	_, ok := ds.Records[1].Custom[3]
	assert.True(t, ok)
}

func TestLoadWithFilter(t *testing.T) {
	opts := defaultOptions()
	opts.FilterMode = filter.ModeInclude
	opts.Rules = []filter.Rule{{Category: "region", Value: "関西"}}
	ds := loadFixture(t, opts)
	assert.Equal(t, 2, ds.Len())

	opts.Rules = []filter.Rule{{Category: "region", Value: "Atlantis"}}
	metaPath, inputPath := writeFixture(t)
	_, err := Load(metaPath, inputPath, opts)
	assert.True(t, errors.Is(err, apperrors.ErrMissingOption))
}

func TestRawTables(t *testing.T) {
	ds := loadFixture(t, defaultOptions())
	fkc, err := ds.FKCRawTable()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"投稿id", "ユーザid", "投稿日", "性別", "現住所", "地域", "年齢", "年代", "職業", "未既婚",
		"子供の人数", "世帯年収", "媒体", "TV", "Web", "色", "感想",
	}, headers(fkc))
	assert.Equal(t, []string{`["A","B"]`, `["B"]`, "NULL"}, fkc.Columns[12].Contents)
	assert.Equal(t, []string{"1", "0", "0"}, fkc.Columns[13].Contents)
	assert.Equal(t, []string{"1", "1", "0"}, fkc.Columns[14].Contents)
	assert.Equal(t, []string{"30", "40", "50"}, fkc.Columns[6].Contents)

	it, err := ds.ITRawTable()
	require.NoError(t, err)
	assert.Contains(t, headers(it), "未既婚×子有無")
	assert.Len(t, it.Columns, len(fkc.Columns)+3)

	opts := defaultOptions()
	opts.IncludeText = false
	noText, err := loadFixture(t, opts).FKCRawTable()
	require.NoError(t, err)
	assert.NotContains(t, headers(noText), "感想")
}

func TestGraphTables(t *testing.T) {
	ds := loadFixture(t, defaultOptions())
	g, err := ds.GraphTables()
	require.NoError(t, err)
	assert.Len(t, g.All(), 8)

	gender := g.Gender
	assert.Equal(t, []string{"女性", "男性"}, gender.Columns[0].Contents)
	assert.Equal(t, []string{"2", "1"}, gender.Columns[1].Contents)
	assert.Equal(t, []string{"2件", "1件"}, gender.Columns[2].Contents)
	assert.Equal(t, "計", *gender.Columns[0].Footer)
	assert.Equal(t, "3", *gender.Columns[1].Footer)

	region := g.Region
	require.Len(t, region.Columns, 4)
	assert.Equal(t, "関東(n=1)", region.Columns[2].Contents[0])
	assert.Equal(t, "33.3%", region.Columns[3].Contents[0])
	assert.Equal(t, "66.7%", region.Columns[3].Contents[1])
	assert.Equal(t, "100.0%", *region.Columns[3].Footer)
}

func TestAggregateTables(t *testing.T) {
	ds := loadFixture(t, defaultOptions())
	aggs, err := ds.AggregateTables()
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	media := aggs[0]
	assert.Equal(t, []string{"field1", "マルチセレクト", "媒体"}, media.Meta)
	assert.Equal(t, []string{"TV", "Web"}, media.Table.Columns[0].Contents)
	assert.Equal(t, []string{"1", "2"}, media.Table.Columns[1].Contents)
	assert.Equal(t, []string{"33.33%", "66.67%"}, media.Table.Columns[2].Contents)

	color := aggs[1]
	assert.Equal(t, []string{"2", "1"}, color.Table.Columns[1].Contents)
}

func TestBuild(t *testing.T) {
	ds := loadFixture(t, defaultOptions())
	rep, err := ds.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ds.RunID, rep.RunID)
	n := 7 + 2
	assert.Len(t, rep.CrosstabN, n*(n+1))
	assert.Len(t, rep.CrosstabPerc, n*(n+1))
	assert.NotEqual(t, rep.CrosstabN[1], rep.CrosstabPerc[1])
}

func TestNegativeAgeRejectsDataset(t *testing.T) {
	opts := defaultOptions()
	opts.Year = 1985
	metaPath, inputPath := writeFixture(t)
	_, err := Load(metaPath, inputPath, opts)
	var inv *apperrors.InvalidRecordError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, 2, inv.Row)
}
