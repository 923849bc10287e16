package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vitrinedev/vitrine/internal/catalog"
)

// jumpItem is one selectable row in the jump overlay. index is the catalog
// position the pager jumps to on selection.
type jumpItem struct {
	index int
	title string
	date  string
}

// jumpPicker filters catalog titles as the viewer types. Substring matches
// rank by match position with edit distance as the tiebreak; when nothing
// contains the query, every title ranks by edit distance so near-misses
// still surface.
type jumpPicker struct {
	items    []jumpItem
	filtered []jumpItem
	query    string
	cursor   int
}

func newJumpPicker(c catalog.Catalog, dateFormat string) *jumpPicker {
	items := make([]jumpItem, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		e := c.At(i)
		items = append(items, jumpItem{index: i, title: e.Title, date: e.Date.Format(dateFormat)})
	}
	p := &jumpPicker{items: items}
	p.refilter()
	return p
}

func (p *jumpPicker) setQuery(q string) {
	p.query = q
	p.refilter()
}

func (p *jumpPicker) cursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *jumpPicker) cursorDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

// selected returns the item under the cursor, or ok=false when the filter
// matched nothing.
func (p *jumpPicker) selected() (jumpItem, bool) {
	if len(p.filtered) == 0 || p.cursor >= len(p.filtered) {
		return jumpItem{}, false
	}
	return p.filtered[p.cursor], true
}

type scoredJumpItem struct {
	item jumpItem
	// substring match position, or -1 for no substring match
	pos int
	// levenshtein distance query vs title
	dist int
}

func (p *jumpPicker) refilter() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append([]jumpItem(nil), p.items...)
		p.clampCursor()
		return
	}

	scored := make([]scoredJumpItem, 0, len(p.items))
	for _, it := range p.items {
		title := strings.ToLower(it.title)
		scored = append(scored, scoredJumpItem{
			item: it,
			pos:  strings.Index(title, q),
			dist: levenshtein.ComputeDistance(q, title),
		})
	}

	hasSubstring := false
	for _, s := range scored {
		if s.pos >= 0 {
			hasSubstring = true
			break
		}
	}
	if hasSubstring {
		kept := scored[:0]
		for _, s := range scored {
			if s.pos >= 0 {
				kept = append(kept, s)
			}
		}
		scored = kept
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := scored[i], scored[j]
		if si.pos >= 0 && sj.pos >= 0 && si.pos != sj.pos {
			return si.pos < sj.pos
		}
		return si.dist < sj.dist
	})

	p.filtered = make([]jumpItem, 0, len(scored))
	for _, s := range scored {
		p.filtered = append(p.filtered, s.item)
	}
	p.clampCursor()
}

func (p *jumpPicker) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}
