// Package export renders the read-only journal projection: a date-ordered
// sequence of entries with mood, tag and category names already resolved.
package export

import (
	"time"
)

// Entry is one row of the projection.
type Entry struct {
	Date      time.Time
	Title     string
	Content   string
	WordCount int
	Category  string
	Moods     []string // primary first
	Tags      []string
}
