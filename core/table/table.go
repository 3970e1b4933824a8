package table

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/logger"
)

// Rendered is a dataset stringified and capped to the row limit.
type Rendered struct {
	Columns   []string
	Rows      [][]string
	Total     int // rows in the source dataset
	Truncated bool
}

// Empty reports whether there is nothing to embed.
func (r *Rendered) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Render converts ds into a Rendered table applying the row limit.
// An empty or nil dataset yields an empty Rendered and no error.
func Render(ds *dataset.Dataset, opts ...Option) (*Rendered, error) {
	o := options{limit: DefaultLimit, policy: Truncate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, o.limit)
	}

	total := ds.Rows()
	if total == 0 {
		return &Rendered{Columns: ds.Columns()}, nil
	}

	truncated := false
	if total > o.limit {
		if o.policy == Reject {
			return nil, fmt.Errorf("%w: %d rows > limit of %d, filter the dataset first", ErrDataFrameTooLarge, total, o.limit)
		}
		ds = ds.Head(o.limit)
		truncated = true
		o.warn(Truncation{Name: o.name, Rows: total, Limit: o.limit})
	}

	rows := make([][]string, ds.Rows())
	for i := range rows {
		rows[i] = lo.Map(ds.Row(i), func(v any, _ int) string { return Stringify(v) })
	}

	return &Rendered{
		Columns:   ds.Columns(),
		Rows:      rows,
		Total:     total,
		Truncated: truncated,
	}, nil
}

func (o options) warn(t Truncation) {
	if o.logger != nil {
		o.logger.Warn(
			fmt.Sprintf("only first %d records will be added (%d > the limit of %d)", t.Limit, t.Rows, t.Limit),
			logger.Component("table"),
			logger.Event("truncated"),
			logger.Dataset(t.Name),
			logger.Rows(t.Rows),
			logger.Limit(t.Limit),
		)
	}
	if o.onTruncate != nil {
		o.onTruncate(t)
	}
}

// Stringify converts a cell value to its display text.
// Nil becomes the empty string and times are printed without zone noise.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
