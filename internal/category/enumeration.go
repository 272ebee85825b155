package category

import "strings"

// Category is the language-aware view of an enumeration, independent of its variant type.
type Category interface {
	Key() string
	Name(lng Language) string
	Labels(lng Language) []string
	Len() int
	// LookupIndex resolves a name to its position in declaration order.
	LookupIndex(s string) (int, bool)
}

// Entry declares one variant of an Enumeration.
type Entry[V ~int] struct {
	Variant V
	// Key is the canonical, language-neutral name (e.g. "Male").
	Key     string
	Label   Localized
	Aliases []string
}

// Enumeration is a closed, ordered set of variants with localized labels.
// Declaration order is the tabulation order in every language.
type Enumeration[V ~int] struct {
	key     string
	name    Localized
	entries []Entry[V]
	index   map[V]int
	lookup  map[string]V
}

func newEnumeration[V ~int](key string, name Localized, entries ...Entry[V]) *Enumeration[V] {
	e := &Enumeration[V]{
		key:     key,
		name:    name,
		entries: entries,
		index:   make(map[V]int, len(entries)),
		lookup:  make(map[string]V, len(entries)*4),
	}
	for i, ent := range entries {
		e.index[ent.Variant] = i
		for _, s := range append([]string{ent.Key, ent.Label.En, ent.Label.Ja}, ent.Aliases...) {
			if s == "" {
				continue
			}
			k := normalizeLookup(s)
			if _, dup := e.lookup[k]; !dup {
				e.lookup[k] = ent.Variant
			}
		}
	}
	return e
}

func normalizeLookup(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Key returns the configuration key of the category (e.g. "gender").
func (e *Enumeration[V]) Key() string { return e.key }

// Name returns the localized category display name.
func (e *Enumeration[V]) Name(lng Language) string { return e.name.In(lng) }

// Len returns the number of variants.
func (e *Enumeration[V]) Len() int { return len(e.entries) }

// All returns the variants in declaration order.
func (e *Enumeration[V]) All() []V {
	out := make([]V, len(e.entries))
	for i, ent := range e.entries {
		out[i] = ent.Variant
	}
	return out
}

// Label returns the localized label of v, or "" if v is not a member.
func (e *Enumeration[V]) Label(v V, lng Language) string {
	i, ok := e.index[v]
	if !ok {
		return ""
	}
	return e.entries[i].Label.In(lng)
}

// Labels returns every label in declaration order.
func (e *Enumeration[V]) Labels(lng Language) []string {
	out := make([]string, len(e.entries))
	for i, ent := range e.entries {
		out[i] = ent.Label.In(lng)
	}
	return out
}

// Index returns the position of v in declaration order, or -1.
func (e *Enumeration[V]) Index(v V) int {
	if i, ok := e.index[v]; ok {
		return i
	}
	return -1
}

// Lookup resolves a canonical key, a label in either language, or an input alias.
// Matching ignores case and surrounding whitespace.
func (e *Enumeration[V]) Lookup(s string) (V, bool) {
	v, ok := e.lookup[normalizeLookup(s)]
	return v, ok
}

func (e *Enumeration[V]) LookupIndex(s string) (int, bool) {
	v, ok := e.Lookup(s)
	if !ok {
		return -1, false
	}
	return e.index[v], true
}

// KeyOf returns the canonical key of v.
func (e *Enumeration[V]) KeyOf(v V) string {
	if i, ok := e.index[v]; ok {
		return e.entries[i].Key
	}
	return ""
}

// Categories lists every enumeration in a stable order.
func Categories() []Category {
	return []Category{
		Genders, MaritalStatuses, ChildrenRanges, Jobs, AgeRanges1060, AgeRanges1070,
		YearlyIncomeRanges, Prefectures, Regions, PurchaseStatuses,
	}
}

// CategoryByKey resolves a category by its key or by its display name in either language.
func CategoryByKey(s string) (Category, bool) {
	k := normalizeLookup(s)
	for _, c := range Categories() {
		if normalizeLookup(c.Key()) == k || normalizeLookup(c.Name(En)) == k || normalizeLookup(c.Name(Ja)) == k {
			return c, true
		}
	}
	return nil, false
}
