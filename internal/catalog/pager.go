package catalog

// Pager owns the current position within a fixed-length catalog. Positions
// form a linear chain 0..n-1; transitions past either end are no-ops, never
// wraps. A zero-length pager has no current entry and refuses all moves.
type Pager struct {
	length  int
	current int
}

// NewPager creates a pager over a catalog of the given length, positioned
// at index 0 (the newest entry).
func NewPager(length int) *Pager {
	if length < 0 {
		length = 0
	}
	return &Pager{length: length}
}

// Current reports the current index. ok is false when the catalog is empty.
func (p *Pager) Current() (int, bool) {
	if p.length == 0 {
		return 0, false
	}
	return p.current, true
}

// Len reports the catalog length the pager was built for.
func (p *Pager) Len() int { return p.length }

// Previous steps toward the newest entry. No-op at index 0.
func (p *Pager) Previous() {
	if p.current > 0 {
		p.current--
	}
}

// Next steps toward the oldest entry. No-op at the last index.
func (p *Pager) Next() {
	if p.current < p.length-1 {
		p.current++
	}
}

// CanGoPrevious reports whether Previous would move.
func (p *Pager) CanGoPrevious() bool { return p.current > 0 }

// CanGoNext reports whether Next would move.
func (p *Pager) CanGoNext() bool { return p.length > 0 && p.current < p.length-1 }

// Jump moves directly to index i. Out-of-range jumps are no-ops, so a stale
// position restored from a previous session can never break the bounds.
func (p *Pager) Jump(i int) {
	if i >= 0 && i < p.length {
		p.current = i
	}
}
