// Package schema holds the custom-field definitions declared by a survey's meta document.
package schema

import (
	"sort"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
)

// Variant is the input control a custom field was rendered with.
type Variant int

const (
	Dropdown Variant = iota
	Radio
	MultiSelect
	Text
	TextArea
	Html
)

var variantLabels = [...]category.Localized{
	Dropdown:    {En: "Pulldown", Ja: "プルダウン"},
	Radio:       {En: "Radio Button", Ja: "ラジオボタン"},
	MultiSelect: {En: "Multi Select", Ja: "マルチセレクト"},
	Text:        {En: "Text", Ja: "テキスト"},
	TextArea:    {En: "Text Area", Ja: "テキストエリア"},
	Html:        {En: "HTML", Ja: "HTML"},
}

var variantTags = map[string]Variant{
	"dropdown": Dropdown,
	"radio":    Radio,
	"checkbox": MultiSelect,
	"text":     Text,
	"textarea": TextArea,
	"html":     Html,
}

// TypeLabel is the localized type name shown in report headers.
func (v Variant) TypeLabel(lng category.Language) string {
	if v < 0 || int(v) >= len(variantLabels) {
		return ""
	}
	return variantLabels[v].In(lng)
}

// HasOptions reports whether the variant carries a discrete option table.
func (v Variant) HasOptions() bool {
	return v == Dropdown || v == Radio || v == MultiSelect
}

// Option is one selectable answer. Key is what responses store; Label is what reports show.
type Option struct {
	Key   string
	Label string
}

// CustomFieldDef is one schema-defined question.
type CustomFieldDef struct {
	Key         uint64
	QuestionKey string
	Label       string
	Required    bool
	Variant     Variant
	// Options keeps schema declaration order. Empty unless Variant.HasOptions().
	Options []Option
}

// OptionIndex finds an answer among the options, matching the key first and then the label.
func (d *CustomFieldDef) OptionIndex(answer string) int {
	for i, o := range d.Options {
		if o.Key == answer {
			return i
		}
	}
	for i, o := range d.Options {
		if o.Label == answer {
			return i
		}
	}
	return -1
}

// OptionLabels returns the option labels in declaration order.
func (d *CustomFieldDef) OptionLabels() []string {
	out := make([]string, len(d.Options))
	for i, o := range d.Options {
		out[i] = o.Label
	}
	return out
}

// FieldSchema is the immutable set of custom fields of one survey.
type FieldSchema struct {
	defs map[uint64]*CustomFieldDef
	keys []uint64
}

// New builds a schema. Keys must be unique.
func New(defs ...CustomFieldDef) (*FieldSchema, error) {
	s := &FieldSchema{defs: make(map[uint64]*CustomFieldDef, len(defs))}
	for i := range defs {
		d := defs[i]
		if _, dup := s.defs[d.Key]; dup {
			return nil, apperrors.SchemaParse("duplicate custom field key %d", d.Key)
		}
		if !d.Variant.HasOptions() {
			d.Options = nil
		}
		s.defs[d.Key] = &d
		s.keys = append(s.keys, d.Key)
	}
	sort.Slice(s.keys, func(i, j int) bool { return s.keys[i] < s.keys[j] })
	return s, nil
}

// Get looks up a field by key.
func (s *FieldSchema) Get(key uint64) (*CustomFieldDef, bool) {
	if s == nil {
		return nil, false
	}
	d, ok := s.defs[key]
	return d, ok
}

// Len returns the number of custom fields.
func (s *FieldSchema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns every key in ascending order.
func (s *FieldSchema) Keys() []uint64 {
	if s == nil {
		return nil
	}
	return append([]uint64(nil), s.keys...)
}

// Discrete returns, in ascending order, the keys of fields with an option table.
func (s *FieldSchema) Discrete() []uint64 {
	return s.filter(func(d *CustomFieldDef) bool { return d.Variant.HasOptions() })
}

// Tabulatable returns the keys kept in raw tables: everything except Html, and except
// Text/TextArea unless includeText is set.
func (s *FieldSchema) Tabulatable(includeText bool) []uint64 {
	return s.filter(func(d *CustomFieldDef) bool {
		switch d.Variant {
		case Html:
			return false
		case Text, TextArea:
			return includeText
		}
		return true
	})
}

// IsMultiValued reports whether key names a MultiSelect field.
func (s *FieldSchema) IsMultiValued(key uint64) bool {
	d, ok := s.Get(key)
	return ok && d.Variant == MultiSelect
}

func (s *FieldSchema) filter(keep func(*CustomFieldDef) bool) []uint64 {
	if s == nil {
		return nil
	}
	var out []uint64
	for _, k := range s.keys {
		if keep(s.defs[k]) {
			out = append(out, k)
		}
	}
	return out
}
