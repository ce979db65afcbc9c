package export

import (
	"fmt"
	"io"
	"strings"
)

// ToText writes a plain-text rendering, one block per entry separated by a
// rule line.
func ToText(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, e.Date.Format("2006-01-02")); err != nil {
			return err
		}
		if e.Title != "" {
			if _, err := fmt.Fprintln(w, e.Title); err != nil {
				return err
			}
		}
		if e.Category != "" {
			if _, err := fmt.Fprintf(w, "Category: %s\n", e.Category); err != nil {
				return err
			}
		}
		if len(e.Moods) > 0 {
			if _, err := fmt.Fprintf(w, "Moods: %s\n", strings.Join(e.Moods, ", ")); err != nil {
				return err
			}
		}
		if len(e.Tags) > 0 {
			if _, err := fmt.Fprintf(w, "Tags: %s\n", strings.Join(e.Tags, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, e.Content); err != nil {
			return err
		}
	}
	return nil
}
