package schema

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/utils"
)

type metaDocument struct {
	Pages []struct {
		Elements []metaElement `json:"Elements"`
	} `json:"Pages"`
}

type metaElement struct {
	QuestionKey string `json:"QuestionKey"`
	Label       string `json:"Label"`
	Required    bool   `json:"Required"`
	Type        string `json:"Type"`
	Options     []struct {
		Value string `json:"Value"`
		Label string `json:"Label"`
	} `json:"Options"`
}

// Parse decodes a meta document. Html elements are dropped.
func Parse(data []byte) (*FieldSchema, error) {
	var doc metaDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.WithCode(apperrors.CodeSchemaParse, err), "decode meta json")
	}
	var defs []CustomFieldDef
	for pi, page := range doc.Pages {
		for ei, el := range page.Elements {
			variant, ok := variantTags[strings.ToLower(strings.TrimSpace(el.Type))]
			if !ok {
				return nil, apperrors.SchemaParse("page %d element %d: unknown type %q", pi+1, ei+1, el.Type)
			}
			if variant == Html {
				continue
			}
			key, ok := utils.ExtractDigits(el.QuestionKey)
			if !ok {
				return nil, apperrors.SchemaParse("page %d element %d: question key %q has no numeric id", pi+1, ei+1, el.QuestionKey)
			}
			def := CustomFieldDef{
				Key:         key,
				QuestionKey: el.QuestionKey,
				Label:       el.Label,
				Required:    el.Required,
				Variant:     variant,
			}
			if variant.HasOptions() {
				for _, o := range el.Options {
					def.Options = append(def.Options, Option{Key: o.Value, Label: o.Label})
				}
			}
			defs = append(defs, def)
		}
	}
	return New(defs...)
}

// Read parses a meta document from r.
func Read(r io.Reader) (*FieldSchema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("read meta: %w", err))
	}
	return Parse(b)
}

// Load parses the meta document at path.
func Load(path string) (*FieldSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("open meta: %w", err))
	}
	defer f.Close()
	return Read(f)
}
