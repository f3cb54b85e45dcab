package media

// Gallery is a cursor over a resolved media sequence. Navigation wraps
// circularly in both directions and explicit selection reduces modulo
// the sequence length, so wraparound arithmetic can never go out of
// range.
type Gallery struct {
	items []Item
	index int
}

// NewGallery builds a cursor over the project's media. ok is false when
// the sequence is empty, in which case the gallery must not open.
func NewGallery(items []Item) (*Gallery, bool) {
	if len(items) == 0 {
		return nil, false
	}
	return &Gallery{items: items}, true
}

// Len returns the sequence length.
func (g *Gallery) Len() int { return len(g.items) }

// Index returns the current cursor position.
func (g *Gallery) Index() int { return g.index }

// Current returns the item under the cursor.
func (g *Gallery) Current() Item { return g.items[g.index] }

// Next advances the cursor, wrapping from the last item to the first.
func (g *Gallery) Next() Item {
	g.index = (g.index + 1) % len(g.items)
	return g.items[g.index]
}

// Previous moves the cursor back, wrapping from the first item to the
// last.
func (g *Gallery) Previous() Item {
	g.index = (g.index - 1 + len(g.items)) % len(g.items)
	return g.items[g.index]
}

// Select moves the cursor to i, reduced modulo the sequence length;
// negative input selects from the end.
func (g *Gallery) Select(i int) Item {
	n := len(g.items)
	g.index = ((i % n) + n) % n
	return g.items[g.index]
}
