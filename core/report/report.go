// Package report summarizes named datasets into one descriptive entry each.
//
// Callers pass datasets (or bare shapes) as an ordered list of items; the
// order is preserved exactly in the output because it is the order the
// entries appear in the final message.
//
//	entries := report.Summarize(
//		report.Item{Name: "Transactions", Source: transactions},
//		report.Item{Name: "Customers", Source: dataset.Shape{Rows: 7, Columns: 8}},
//	)
package report

import (
	"fmt"

	"github.com/dmitrymomot/notify/core/dataset"
)

// Source is anything that knows its dimensions: *dataset.Dataset and
// dataset.Shape both qualify.
type Source interface {
	Shape() dataset.Shape
}

// Item is one named entry of the ordered input mapping.
type Item struct {
	Name   string
	Source Source
}

// Entry is the summary of a single dataset.
type Entry struct {
	Name    string
	Rows    int
	Columns int
}

// Title returns the heading for the entry.
func (e Entry) Title() string {
	return e.Name
}

// Text returns the human-readable description, with counts in markdown bold.
func (e Entry) Text() string {
	return fmt.Sprintf("In total **%d** records with **%d** columns processed", e.Rows, e.Columns)
}

// Summarize returns one Entry per item, in input order.
// Items with a nil Source are reported with zero counts.
func Summarize(items ...Item) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		var shape dataset.Shape
		if it.Source != nil {
			shape = it.Source.Shape()
		}
		entries = append(entries, Entry{
			Name:    it.Name,
			Rows:    shape.Rows,
			Columns: shape.Columns,
		})
	}
	return entries
}

// Shapes is a convenience for building items from already-known dimensions.
// names and shapes must have equal length; extra elements are ignored.
func Shapes(names []string, shapes []dataset.Shape) []Item {
	n := min(len(names), len(shapes))
	items := make([]Item, n)
	for i := range n {
		items[i] = Item{Name: names[i], Source: shapes[i]}
	}
	return items
}
