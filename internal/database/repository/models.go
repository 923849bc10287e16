package repository

import "time"

// View is one recorded visit to a catalog entry.
type View struct {
	ID         string
	SessionID  string
	Source     string
	EntryTitle string
	EntryPath  string
	EntryDate  string // YYYY-MM-DD
	Position   int
	ViewedAt   time.Time
}
