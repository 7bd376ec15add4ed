package layout

import "fmt"

// IDGenerator issues human-readable object IDs for one analysis run.
// Each run owns its own generator, so repeated or parallel analyses
// produce identical IDs for identical input.
type IDGenerator struct {
	next int
}

// NewIDGenerator creates a generator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next ID with the given prefix, e.g. "word-3".
func (g *IDGenerator) Next(prefix string) string {
	g.next++
	return fmt.Sprintf("%s-%d", prefix, g.next)
}
