// Package view projects a catalog position into a display-ready view model.
// The projection is pure: no I/O, no state, idempotent for a given input.
package view

import (
	"fmt"

	"github.com/vitrinedev/vitrine/internal/catalog"
)

// PlaceholderText is shown when no catalog entry can be displayed, whether
// the load failed or simply produced zero entries.
const PlaceholderText = "No apps found"

// DefaultDateFormat renders day-resolution dates for display.
const DefaultDateFormat = "January 2, 2006"

// Model holds everything the display surface needs for one position.
type Model struct {
	Title            string
	Description      string
	FormattedDate    string
	CounterText      string
	ContentReference string
	PreviousEnabled  bool
	NextEnabled      bool
	Placeholder      bool
}

// Render projects (catalog, index) into a Model. The index must be a
// position the Pager handed out; an empty catalog yields the placeholder
// model with both controls disabled and no content reference.
func Render(c catalog.Catalog, index int, dateFormat string) Model {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	n := c.Len()
	if n == 0 {
		return Model{Title: PlaceholderText, Placeholder: true}
	}
	e := c.At(index)
	return Model{
		Title:            e.Title,
		Description:      e.Description,
		FormattedDate:    e.Date.Format(dateFormat),
		CounterText:      fmt.Sprintf("App %d of %d", index+1, n),
		ContentReference: e.Path,
		PreviousEnabled:  index > 0,
		NextEnabled:      index < n-1,
	}
}
