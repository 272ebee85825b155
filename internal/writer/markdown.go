package writer

import (
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/report"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
	"github.com/KaramelBytes/crosstab-cli/internal/utils"
)

// Markdown renders rep as one document with a section per sheet.
func Markdown(rep *report.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Crosstab report\n\nRun: `%s`\n\n", rep.RunID)
	section := func(name string) { fmt.Fprintf(&b, "## %s\n\n", name) }

	section(SheetFKC)
	b.WriteString(rep.FKC.Markdown() + "\n")
	section(SheetIT)
	b.WriteString(rep.IT.Markdown() + "\n")
	section(SheetUserGraph)
	for _, t := range rep.Graphs.All() {
		b.WriteString(t.Markdown() + "\n")
	}
	for _, s := range []struct {
		name   string
		tables []table.WithMeta
	}{
		{SheetAggregate, rep.Aggregates},
		{SheetCrosstabN, rep.CrosstabN},
		{SheetCrosstabPerc, rep.CrosstabPerc},
	} {
		section(s.name)
		for _, t := range s.tables {
			b.WriteString(t.Markdown() + "\n")
		}
	}
	return b.String()
}

// WriteMarkdown writes the Markdown rendering of rep to path.
func WriteMarkdown(rep *report.Report, path string) error {
	if err := utils.SafeWriteFile(path, []byte(Markdown(rep))); err != nil {
		return apperrors.WithCode(apperrors.CodeIO, err)
	}
	slog.Info("markdown written", "run_id", rep.RunID, "path", path)
	return nil
}
