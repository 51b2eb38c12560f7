package svg

import (
	"bufio"
	"fmt"
	"io"
)

// Write writes the document as a standalone SVG with one numbered path
// element per path, preserving the authored width, height and viewBox.
func Write(w io.Writer, doc *Document) error {
	b := bufio.NewWriter(w)
	b.WriteString(`<svg version="1.1" xmlns="http://www.w3.org/2000/svg"`)
	if doc.Width != "" {
		fmt.Fprintf(b, ` width="%s"`, doc.Width)
	}
	if doc.Height != "" {
		fmt.Fprintf(b, ` height="%s"`, doc.Height)
	}
	if doc.ViewBox != "" {
		fmt.Fprintf(b, ` viewBox="%s"`, doc.ViewBox)
	}
	b.WriteString(">\n")
	for i, p := range doc.Paths {
		fmt.Fprintf(b, "<path id=\"path-%d\" d=\"%s\"/>\n", i+1, p)
	}
	b.WriteString("</svg>\n")
	return b.Flush()
}
