package timeline

import (
	"fmt"
)

// DefaultBatchSize is how many games a single "load more" step aims to
// reveal. A year section is atomic, so a step may overshoot by up to one
// year group. That is a display-batching heuristic, not a page size.
const DefaultBatchSize = 50

// Cursor walks an ordered list of year groups in batch-sized increments
// without ever re-grouping. It is ephemeral: any filter state change
// throws the cursor away and builds a fresh one.
type Cursor struct {
	groups    []YearGroup
	next      int
	displayed int
	total     int
	batch     int
}

func NewCursor(groups []YearGroup, batchSize int) *Cursor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return &Cursor{groups: groups, total: total, batch: batchSize}
}

// Next reveals the next batch: whole year groups are appended until the
// step has revealed at least the batch size or the groups run out. After
// exhaustion it returns nil.
func (c *Cursor) Next() []YearGroup {
	if c.next >= len(c.groups) {
		return nil
	}
	start := c.next
	revealed := 0
	for c.next < len(c.groups) && revealed < c.batch {
		revealed += c.groups[c.next].Count
		c.next++
	}
	c.displayed += revealed
	return c.groups[start:c.next]
}

func (c *Cursor) HasMore() bool {
	return c.next < len(c.groups)
}

func (c *Cursor) Displayed() int {
	return c.displayed
}

func (c *Cursor) Total() int {
	return c.total
}

// Label is the "load more" caption, e.g. "50 of 423 shown".
func (c *Cursor) Label() string {
	return fmt.Sprintf("%d of %d shown", c.displayed, c.total)
}
