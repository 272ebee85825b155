package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/writer"
)

const cliMeta = `{"Pages":[{"Elements":[
  {"QuestionKey":"field1","Label":"媒体","Type":"checkbox","Options":[{"Value":"A","Label":"TV"},{"Value":"B","Label":"Web"}]},
  {"QuestionKey":"field2","Label":"色","Type":"radio","Options":[{"Value":"r","Label":"赤"},{"Value":"b","Label":"青"}]},
  {"QuestionKey":"field3","Label":"感想","Type":"text"}
]}]}`

const cliCSV = `id,user_id,campaign_id,price,bonus_point,status,created_at,updated at,email,nickname,gender,birth_year,job,prefecture,marital_status,children,household_income_min,household_income_max,field1,field2,field3
p1,u1,c1,0,0,purchased,2020-07-01,,,,female,1990,学生,東京都,single,0,0,0,"[""A"",""B""]",r,good
p2,u2,c1,0,0,purchased,2020-07-02,,,,male,1980,公務員,大阪府,married,2,0,0,"[""B""]",b,
p3,u3,c1,0,0,purchased,2020-07-03,,,,female,1970,学生,大阪府,married,2,0,0,,r,ok
`

// resetFlags restores every flag of c and its children to its default so sticky
// Changed state does not leak between invocations.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCmd(t, args...)
	require.NoError(t, err, "command %v", args)
	return out
}

// setupHome isolates config under a temp HOME and writes the fixture inputs.
func setupHome(t *testing.T) (home, meta, input string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	meta = filepath.Join(home, "meta.json")
	input = filepath.Join(home, "answers.csv")
	require.NoError(t, os.WriteFile(meta, []byte(cliMeta), 0o644))
	require.NoError(t, os.WriteFile(input, []byte(cliCSV), 0o644))
	return home, meta, input
}

func TestCLI_ReportXLSX(t *testing.T) {
	home, meta, input := setupHome(t)
	outPath := filepath.Join(home, "out", "report.xlsx")

	out := mustRun(t, "report", "--meta", meta, "--input", input, "--output", outPath, "--year", "2020", "--workers", "2")
	assert.Contains(t, out, "Wrote "+outPath)
	assert.Contains(t, out, "3 records")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, writer.Sheets, f.GetSheetList())
	v, err := f.GetCellValue(writer.SheetFKC, "A2")
	require.NoError(t, err)
	assert.Equal(t, "p1", v)
}

func TestCLI_ReportMarkdownWithFilter(t *testing.T) {
	home, meta, input := setupHome(t)
	outPath := filepath.Join(home, "report.md")

	out := mustRun(t, "report", "--meta", meta, "--input", input, "-o", outPath, "--year", "2020", "--include", "region=関西")
	assert.Contains(t, out, "2 records")

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	doc := string(b)
	assert.Contains(t, doc, "## "+writer.SheetCrosstabPerc)
	assert.NotContains(t, doc, "| p1 |")
	assert.Contains(t, doc, "| p2 |")
}

func TestCLI_ReportErrors(t *testing.T) {
	home, meta, input := setupHome(t)
	outPath := filepath.Join(home, "r.xlsx")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown filter value", []string{"--include", "region=Atlantis"}, apperrors.ErrMissingOption},
		{"both modes", []string{"--include", "gender=女性", "--ignore", "gender=男性"}, apperrors.ErrConfigInvalid},
		{"bad format", []string{"--format", "pdf"}, apperrors.ErrConfigInvalid},
		{"negative age", []string{"--year", "1975"}, apperrors.ErrInvalidRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"report", "--meta", meta, "--input", input, "--output", outPath}, tt.args...)
			_, err := runCmd(t, args...)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	_, err := runCmd(t, "report", "--input", input, "--output", outPath)
	assert.Error(t, err, "--meta is required")
	_, err = os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestCLI_Fields(t *testing.T) {
	_, meta, _ := setupHome(t)
	out := mustRun(t, "fields", "--meta", meta)
	assert.Contains(t, out, "9 candidate fields")
	for _, s := range []string{"age1060", "region", "field1", "field2", "マルチセレクト"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "field3")
}

func TestCLI_Dist(t *testing.T) {
	_, meta, input := setupHome(t)

	t.Run("self", func(t *testing.T) {
		out := mustRun(t, "dist", "field2", "--meta", meta, "--input", input, "--year", "2020")
		assert.Contains(t, out, "赤")
		assert.Contains(t, out, "66.67%")
	})
	t.Run("numeric", func(t *testing.T) {
		out := mustRun(t, "dist", "age", "--meta", meta, "--input", input, "--year", "2020")
		assert.Contains(t, out, "mean")
		assert.Contains(t, out, "40.00")
	})
	t.Run("crosstab", func(t *testing.T) {
		out := mustRun(t, "dist", "gender", "--by", "field2", "--meta", meta, "--input", input, "--year", "2020")
		assert.Contains(t, out, "field2")
		assert.Contains(t, out, "青")
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := runCmd(t, "dist", "shoe_size", "--meta", meta, "--input", input)
		assert.ErrorIs(t, err, apperrors.ErrUnknownField)
	})
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home, _, _ := setupHome(t)

	mustRun(t, "config", "set", "lang", "en")
	mustRun(t, "config", "set", "filters", "gender=male")
	out := mustRun(t, "config", "show")
	assert.Contains(t, out, "lang: en\n")
	assert.Contains(t, out, "filters: gender=male\n")

	b, err := os.ReadFile(filepath.Join(home, ".crosstab", "config.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "lang: en"))

	out = mustRun(t, "config", "show", "--lang", "ja")
	assert.Contains(t, out, "lang: ja\n")

	_, err = runCmd(t, "config", "set", "nope", "1")
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
}
