package message

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/dmitrymomot/notify/core/report"
	"github.com/dmitrymomot/notify/core/table"
)

// Kind identifies the variant of a Block.
type Kind string

const (
	KindHeader  Kind = "header"
	KindWarning Kind = "warning"
	KindText    Kind = "text"
	KindTable   Kind = "table"
	KindReport  Kind = "report"
	KindButtons Kind = "buttons"
	KindRaw     Kind = "raw"
)

// Block is one unit of message content. Every variant marshals itself to a
// single Adaptive Card element.
type Block interface {
	Kind() Kind
	json.Marshaler
}

// Header is the title block, optionally with a subtitle.
type Header struct {
	Title    string
	Subtitle string
}

func (Header) Kind() Kind { return KindHeader }

func (h Header) MarshalJSON() ([]byte, error) {
	title := textBlock{Type: "TextBlock", Text: h.Title, Size: "Large", Weight: "Bolder", Wrap: true}
	if h.Subtitle == "" {
		return json.Marshal(title)
	}
	return json.Marshal(container{
		Type: "Container",
		Items: []any{
			title,
			textBlock{Type: "TextBlock", Text: h.Subtitle, IsSubtle: true, Spacing: "None", Wrap: true},
		},
	})
}

// Warning is highlighted attention text.
type Warning struct {
	Text string
}

func (Warning) Kind() Kind { return KindWarning }

func (w Warning) MarshalJSON() ([]byte, error) {
	return json.Marshal(textBlock{Type: "TextBlock", Text: w.Text, Color: "Attention", Weight: "Bolder", Wrap: true})
}

// Text is a paragraph of plain (markdown-capable) text.
type Text struct {
	Text string
}

func (Text) Kind() Kind { return KindText }

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(textBlock{Type: "TextBlock", Text: t.Text, Wrap: true})
}

// Table is a rendered dataset.
type Table struct {
	Rendered *table.Rendered
}

func (Table) Kind() Kind { return KindTable }

func (t Table) MarshalJSON() ([]byte, error) {
	r := t.Rendered
	if r == nil {
		r = &table.Rendered{}
	}
	el := tableElement{
		Type:             "Table",
		GridStyle:        "accent",
		FirstRowAsHeader: true,
		Columns:          make([]tableColumn, len(r.Columns)),
		Rows:             make([]tableRow, 0, len(r.Rows)+1),
	}

	for i, w := range columnWidths(r) {
		el.Columns[i] = tableColumn{Width: w}
	}

	header := tableRow{Type: "TableRow", Style: "accent"}
	for _, c := range r.Columns {
		header.Cells = append(header.Cells, cell(textBlock{Type: "TextBlock", Text: c, Weight: "Bolder", Wrap: true}))
	}
	el.Rows = append(el.Rows, header)

	for _, row := range r.Rows {
		tr := tableRow{Type: "TableRow"}
		for _, v := range row {
			tr.Cells = append(tr.Cells, cell(textBlock{Type: "TextBlock", Text: v, Wrap: true}))
		}
		el.Rows = append(el.Rows, tr)
	}

	return json.Marshal(el)
}

// columnWidths derives relative width hints from the longest text per column.
func columnWidths(r *table.Rendered) []int {
	widths := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		longest := utf8.RuneCountInString(c)
		for _, row := range r.Rows {
			if i < len(row) {
				longest = max(longest, utf8.RuneCountInString(row[i]))
			}
		}
		widths[i] = min(max((longest+7)/8, 1), 4)
	}
	return widths
}

// Report summarizes one dataset.
type Report struct {
	Entry report.Entry
}

func (Report) Kind() Kind { return KindReport }

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(container{
		Type:      "Container",
		Separator: true,
		Items: []any{
			textBlock{Type: "TextBlock", Text: r.Entry.Title(), Size: "Medium", Weight: "Bolder", Wrap: true},
			textBlock{Type: "TextBlock", Text: r.Entry.Text(), Wrap: true},
		},
	})
}

// Button is a labelled link.
type Button struct {
	Label string
	URL   string
}

// Buttons is a row of link buttons in the given order.
type Buttons struct {
	Buttons []Button
}

func (Buttons) Kind() Kind { return KindButtons }

func (b Buttons) MarshalJSON() ([]byte, error) {
	set := actionSet{Type: "ActionSet", Actions: make([]openURLAction, len(b.Buttons))}
	for i, btn := range b.Buttons {
		set.Actions[i] = openURLAction{Type: "Action.OpenUrl", Title: btn.Label, URL: btn.URL}
	}
	return json.Marshal(set)
}

// Raw is a caller-built Adaptive Card element. It must carry a known "type".
type Raw map[string]any

func (Raw) Kind() Kind { return KindRaw }

func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(r))
}

// ElementType returns the Adaptive Card element type, or "" if missing.
func (r Raw) ElementType() string {
	s, _ := r["type"].(string)
	return s
}

// knownElements are the Adaptive Card body element types accepted by InsertRaw.
var knownElements = map[string]struct{}{
	"TextBlock":       {},
	"RichTextBlock":   {},
	"Image":           {},
	"ImageSet":        {},
	"Media":           {},
	"Container":       {},
	"ColumnSet":       {},
	"FactSet":         {},
	"ActionSet":       {},
	"Table":           {},
	"Input.Text":      {},
	"Input.Number":    {},
	"Input.Date":      {},
	"Input.Time":      {},
	"Input.Toggle":    {},
	"Input.ChoiceSet": {},
}

// clone copies r and every nested map and slice so the caller can keep
// editing its element after InsertRaw.
func (r Raw) clone() Raw {
	return Raw(deepCopy(map[string]any(r)).(map[string]any))
}

func deepCopy(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = deepCopy(val)
		}
		return out
	case Raw:
		return Raw(deepCopy(map[string]any(x)).(map[string]any))
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = deepCopy(val)
		}
		return out
	case []map[string]any:
		if x == nil {
			return x
		}
		out := make([]map[string]any, len(x))
		for i, val := range x {
			out[i] = deepCopy(val).(map[string]any)
		}
		return out
	default:
		return v
	}
}

// Adaptive Card wire types.

type textBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Size     string `json:"size,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Color    string `json:"color,omitempty"`
	IsSubtle bool   `json:"isSubtle,omitempty"`
	Spacing  string `json:"spacing,omitempty"`
	Wrap     bool   `json:"wrap"`
}

type container struct {
	Type      string `json:"type"`
	Separator bool   `json:"separator,omitempty"`
	Items     []any  `json:"items"`
}

type tableElement struct {
	Type             string        `json:"type"`
	GridStyle        string        `json:"gridStyle,omitempty"`
	FirstRowAsHeader bool          `json:"firstRowAsHeader"`
	Columns          []tableColumn `json:"columns"`
	Rows             []tableRow    `json:"rows"`
}

type tableColumn struct {
	Width int `json:"width"`
}

type tableRow struct {
	Type  string      `json:"type"`
	Style string      `json:"style,omitempty"`
	Cells []tableCell `json:"cells"`
}

type tableCell struct {
	Type  string `json:"type"`
	Items []any  `json:"items"`
}

func cell(item any) tableCell {
	return tableCell{Type: "TableCell", Items: []any{item}}
}

type actionSet struct {
	Type    string          `json:"type"`
	Actions []openURLAction `json:"actions"`
}

type openURLAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
