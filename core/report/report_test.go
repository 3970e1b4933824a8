package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/report"
)

func TestSummarize_PreservesOrder(t *testing.T) {
	t.Parallel()

	entries := report.Summarize(
		report.Item{Name: "A", Source: dataset.Shape{Rows: 3, Columns: 2}},
		report.Item{Name: "B", Source: dataset.Shape{Rows: 7, Columns: 8}},
	)

	require.Len(t, entries, 2)
	assert.Equal(t, report.Entry{Name: "A", Rows: 3, Columns: 2}, entries[0])
	assert.Equal(t, report.Entry{Name: "B", Rows: 7, Columns: 8}, entries[1])

	assert.Contains(t, entries[0].Text(), "**3**")
	assert.Contains(t, entries[0].Text(), "**2**")
	assert.Contains(t, entries[1].Text(), "**7**")
	assert.Contains(t, entries[1].Text(), "**8**")
	assert.Equal(t, "B", entries[1].Title())
}

func TestSummarize_Datasets(t *testing.T) {
	t.Parallel()

	ds := dataset.MustNew([]string{"id", "name", "amount"},
		[]any{1, "a", 10},
		[]any{2, "b", 20},
	)

	entries := report.Summarize(
		report.Item{Name: "Transactions", Source: ds},
		report.Item{Name: "Nothing"},
	)

	require.Len(t, entries, 2)
	assert.Equal(t, report.Entry{Name: "Transactions", Rows: 2, Columns: 3}, entries[0])
	assert.Equal(t, report.Entry{Name: "Nothing"}, entries[1])
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, report.Summarize())
}

func TestShapes(t *testing.T) {
	t.Parallel()

	items := report.Shapes(
		[]string{"x", "y", "z"},
		[]dataset.Shape{{Rows: 1, Columns: 1}, {Rows: 2, Columns: 2}},
	)
	require.Len(t, items, 2)
	assert.Equal(t, "y", items[1].Name)
	assert.Equal(t, dataset.Shape{Rows: 2, Columns: 2}, items[1].Source.Shape())
}
