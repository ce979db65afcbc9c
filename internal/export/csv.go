package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ToCSV writes one row per entry with mood and tag names joined by "; ".
func ToCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Date", "Title", "Category", "Moods", "Tags", "Word Count", "Content"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.Date.Format("2006-01-02"),
			e.Title,
			e.Category,
			strings.Join(e.Moods, "; "),
			strings.Join(e.Tags, "; "),
			fmt.Sprintf("%d", e.WordCount),
			e.Content,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
