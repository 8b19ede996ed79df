package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/recall-srs/recall/internal/domain"
)

// CardListing is one row of the cards command output.
type CardListing struct {
	Card     domain.Card
	Reviewed bool
	State    domain.MemoryState
	// Recall is the predicted recall probability at listing time; only
	// meaningful when Reviewed is true.
	Recall float64
}

// RenderCardList writes a numbered summary of every located card with its
// current scheduling figures.
func RenderCardList(w io.Writer, listings []CardListing) {
	for i, l := range listings {
		fmt.Fprintf(w, "%d. %s\n", i+1, titleStyle.Render(strings.TrimSpace(l.Card.Title)))
		if l.Reviewed {
			fmt.Fprintf(w, "stability: %.2f\ndifficulty: %.2f\npredicted recall: %.2f%%\n",
				l.State.Stability, l.State.Difficulty, l.Recall*100)
		} else {
			fmt.Fprintln(w, dimStyle.Render("not yet reviewed"))
		}
		fmt.Fprintln(w)
	}
}
