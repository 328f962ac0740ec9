// Package notebook extracts directive-tagged cells from Markdown documents.
//
// A cell is a fenced code block whose first line is a %%directive marker,
// for example:
//
//	```python
//	%%mypy --strict
//	x: int = "oops"
//	```
//
// The marker line names the directive and carries its argument line; the
// remaining lines form the cell body.
package notebook

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Cell is one directive-tagged code block extracted from a document.
type Cell struct {
	Directive string // directive name, without the %% marker
	Line      string // trailing argument line, possibly empty
	Source    string // cell body with the marker line stripped
}

// Parser extracts cells from Markdown content.
type Parser struct {
	markdown goldmark.Markdown
}

// NewParser creates a Parser with a default goldmark configuration.
func NewParser() *Parser {
	return &Parser{markdown: goldmark.New()}
}

// Parse returns all directive-tagged fenced code blocks in document
// order. Blocks without a %% marker line are skipped.
func (p *Parser) Parse(r io.Reader) ([]Cell, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))

	var cells []Cell
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		if cell, ok := splitMarker(blockText(fenced, content)); ok {
			cells = append(cells, cell)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk document: %w", err)
	}

	return cells, nil
}

// blockText reassembles a fenced code block's source lines.
func blockText(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// splitMarker separates a %%directive marker line from the cell body.
// ok is false when the first line is not a marker.
func splitMarker(source string) (Cell, bool) {
	marker, body, _ := strings.Cut(source, "\n")
	marker = strings.TrimSpace(marker)
	if !strings.HasPrefix(marker, "%%") {
		return Cell{}, false
	}

	name, rest, _ := strings.Cut(strings.TrimPrefix(marker, "%%"), " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return Cell{}, false
	}

	return Cell{
		Directive: name,
		Line:      strings.TrimSpace(rest),
		Source:    body,
	}, true
}
