package pipeline

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlockLines returns the 0-based numbers of the lines that Goldmark
// places inside a fenced code block or a raw HTML block.
// Fence delimiter lines are not included; they never look like headers.
func CodeBlockLines(content string) map[int]bool {
	src := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	starts := lineStarts(content)

	lines := make(map[int]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.HTMLBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				lines[lineOf(starts, segs.At(i).Start)] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return lines
}

// lineStarts returns the byte offset at which each line begins.
func lineStarts(content string) []int {
	starts := make([]int, 1, strings.Count(content, "\n")+1)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf maps a byte offset to its 0-based line number.
func lineOf(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}
