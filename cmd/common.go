package cmd

import (
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/filter"
	"github.com/KaramelBytes/crosstab-cli/internal/report"
)

// datasetOptions merges config with the --ignore/--include flags. Flag rules replace the
// configured rules and select the mode.
func datasetOptions(ignore, include []string, workers int, workersChanged bool) (report.Options, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return report.Options{}, err
	}
	rules := cfg.Filters
	if len(ignore) > 0 && len(include) > 0 {
		return report.Options{}, apperrors.ConfigInvalid("--ignore and --include cannot be combined")
	}
	if len(ignore) > 0 || len(include) > 0 {
		raw := ignore
		mode = filter.ModeIgnore
		if len(include) > 0 {
			raw, mode = include, filter.ModeInclude
		}
		rules = make([]filter.Rule, 0, len(raw))
		for _, s := range raw {
			r, err := filter.ParseRule(s)
			if err != nil {
				return report.Options{}, err
			}
			rules = append(rules, r)
		}
	}
	w := cfg.Workers
	if workersChanged {
		if workers < 0 {
			return report.Options{}, apperrors.ConfigInvalid("--workers must be >= 0")
		}
		w = workers
	}
	return report.Options{
		Lang:        cfg.Language(),
		Year:        cfg.CreatedYear,
		FilterMode:  mode,
		Rules:       rules,
		IncludeText: cfg.RawIncludeText,
		Workers:     w,
	}, nil
}
