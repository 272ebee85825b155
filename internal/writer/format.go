package writer

import (
	"path/filepath"
	"strings"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/report"
)

// Format is an output file format.
type Format string

const (
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts "xlsx", "md" or "markdown". An empty name infers the format from
// the output path extension and falls back to xlsx.
func ParseFormat(name, path string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			return FormatMarkdown, nil
		default:
			return FormatXLSX, nil
		}
	}
	switch n {
	case "xlsx":
		return FormatXLSX, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", apperrors.ConfigInvalid("unknown output format %q (want xlsx or md)", name)
}

// Write renders rep to path in the given format.
func Write(rep *report.Report, format Format, path string) error {
	switch format {
	case FormatMarkdown:
		return WriteMarkdown(rep, path)
	case FormatXLSX:
		return WriteXLSX(rep, path)
	}
	return apperrors.ConfigInvalid("unknown output format %q", string(format))
}
