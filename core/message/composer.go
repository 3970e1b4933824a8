package message

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/notify/core/dataset"
	"github.com/dmitrymomot/notify/core/report"
	"github.com/dmitrymomot/notify/core/table"
)

// LineBreak splits AddText input into consecutive text blocks.
const LineBreak = "<br>"

type state int

const (
	stateEmpty state = iota
	stateHeaderSet
	stateFinalized
)

// Body is the finalized, ordered list of blocks.
type Body []Block

// Composer accumulates blocks in display order. It is a single-use builder.
type Composer struct {
	blocks []Block
	state  state
}

// NewComposer returns an empty composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Len returns the current number of blocks.
func (c *Composer) Len() int {
	return len(c.blocks)
}

// SetHeader sets the message title. It must be the first call and may only
// happen once.
func (c *Composer) SetHeader(title, subtitle string) error {
	switch c.state {
	case stateHeaderSet:
		return ErrHeaderAlreadySet
	case stateFinalized:
		return ErrFinalized
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: header title is required", ErrInvalidBlock)
	}

	c.blocks = append(c.blocks, Header{Title: title, Subtitle: subtitle})
	c.state = stateHeaderSet
	return nil
}

// AddWarning appends highlighted text. Empty text is ignored.
func (c *Composer) AddWarning(text string) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	c.blocks = append(c.blocks, Warning{Text: text})
	return nil
}

// AddText appends msg as one text block per LineBreak-separated segment.
// Blank segments are dropped.
func (c *Composer) AddText(msg string) error {
	if err := c.mutable(); err != nil {
		return err
	}
	for _, segment := range strings.Split(msg, LineBreak) {
		if segment = strings.TrimSpace(segment); segment != "" {
			c.blocks = append(c.blocks, Text{Text: segment})
		}
	}
	return nil
}

// AddReport appends one report block per item, in order.
func (c *Composer) AddReport(items ...report.Item) error {
	if err := c.mutable(); err != nil {
		return err
	}
	for _, e := range report.Summarize(items...) {
		c.blocks = append(c.blocks, Report{Entry: e})
	}
	return nil
}

// AddTable renders ds and appends it. An empty dataset adds nothing.
// Render failures, such as table.ErrDataFrameTooLarge, leave the body unchanged.
func (c *Composer) AddTable(ds *dataset.Dataset, opts ...table.Option) error {
	if err := c.mutable(); err != nil {
		return err
	}
	rendered, err := table.Render(ds, opts...)
	if err != nil {
		return err
	}
	return c.AddRenderedTable(rendered)
}

// AddRenderedTable appends an already rendered table. An empty table adds nothing.
func (c *Composer) AddRenderedTable(r *table.Rendered) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	c.blocks = append(c.blocks, Table{Rendered: r})
	return nil
}

// AddButtons appends a single block holding all buttons in order.
// Every button needs a label and a URL; nothing is added otherwise.
func (c *Composer) AddButtons(buttons ...Button) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if len(buttons) == 0 {
		return nil
	}
	for i, b := range buttons {
		if strings.TrimSpace(b.Label) == "" || strings.TrimSpace(b.URL) == "" {
			return fmt.Errorf("%w: button %d needs a label and a URL", ErrInvalidBlock, i)
		}
	}
	c.blocks = append(c.blocks, Buttons{Buttons: slices.Clone(buttons)})
	return nil
}

// InsertRaw inserts a caller-built element at index, shifting later blocks.
// The element must have a known Adaptive Card "type" and index must be in
// [0, Len()]. On error the body is left unchanged.
func (c *Composer) InsertRaw(index int, raw Raw) error {
	if err := c.mutable(); err != nil {
		return err
	}

	kind := raw.ElementType()
	if kind == "" {
		return fmt.Errorf("%w: raw element has no \"type\"", ErrInvalidBlock)
	}
	if _, ok := knownElements[kind]; !ok {
		return fmt.Errorf("%w: unknown element type %q", ErrInvalidBlock, kind)
	}
	if index < 0 || index > len(c.blocks) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(c.blocks))
	}

	c.blocks = slices.Insert(c.blocks, index, Block(raw.clone()))
	return nil
}

// Finalize returns the composed body. The composer rejects every call
// afterwards.
func (c *Composer) Finalize() (Body, error) {
	if err := c.mutable(); err != nil {
		return nil, err
	}
	c.state = stateFinalized
	body := Body(c.blocks)
	c.blocks = nil
	return body, nil
}

func (c *Composer) mutable() error {
	switch c.state {
	case stateEmpty:
		return ErrHeaderNotSet
	case stateFinalized:
		return ErrFinalized
	}
	return nil
}

// Kinds lists the block kinds in order. Handy for logging and tests.
func (b Body) Kinds() []Kind {
	kinds := make([]Kind, len(b))
	for i, blk := range b {
		kinds[i] = blk.Kind()
	}
	return kinds
}
