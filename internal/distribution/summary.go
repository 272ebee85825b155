package distribution

import (
	"github.com/montanaflynn/stats"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
)

// Summary describes a numeric static attribute over a record set.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// NumericSummary summarizes Age or Children. An empty record set gives a zero Summary.
func (e *Engine) NumericSummary(ref field.Reference, records []*record.Record) (Summary, error) {
	if !ref.IsStatic() || (ref.Static != field.Age && ref.Static != field.Children) {
		return Summary{}, apperrors.UnsupportedField(ref.String(), "not numeric")
	}
	data := make(stats.Float64Data, 0, len(records))
	for _, r := range records {
		if ref.Static == field.Age {
			data = append(data, float64(r.Age(e.year)))
		} else {
			data = append(data, float64(r.Children))
		}
	}
	if len(data) == 0 {
		return Summary{}, nil
	}

	var s Summary
	var err error
	s.Count = len(data)
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, apperrors.Wrap(err, "mean")
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, apperrors.Wrap(err, "median")
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, apperrors.Wrap(err, "standard deviation")
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, apperrors.Wrap(err, "min")
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, apperrors.Wrap(err, "max")
	}
	return s, nil
}
