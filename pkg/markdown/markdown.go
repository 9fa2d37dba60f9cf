package markdown

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const wordWrap = 120

// Render writes content as styled terminal markdown, falling back to the raw
// text when no renderer is available.
func Render(w io.Writer, content string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)

	if err != nil {
		fmt.Fprintln(w, content)
		return
	}

	md, err := r.Render(content)

	if err != nil {
		fmt.Fprintln(w, content)
		return
	}

	fmt.Fprint(w, md)
}
