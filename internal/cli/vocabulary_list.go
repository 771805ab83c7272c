package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/at-ishikawa/wordcard/internal/vocabulary"
)

// PrintVocabulary writes entries as an aligned table, newest first as given.
func PrintVocabulary(w io.Writer, entries []vocabulary.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No vocabulary yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tWORD\tMEANING\tEXAMPLE\tCREATED")
	for _, entry := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			entry.ID,
			entry.Word,
			entry.Meaning,
			entry.Example,
			entry.CreatedAt.Local().Format("2006-01-02"),
		)
	}
	return tw.Flush()
}
