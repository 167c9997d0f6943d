// Package casebook extracts compiler test cases from Markdown documents.
//
// A case starts at a heading of the form `Test: <name>` and holds exactly one
// `portugol` fence with the program under test followed by one or more
// assertion fences.
package casebook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputFence is the fence language of the program under test.
const InputFence = "portugol"

// AssertionType represents the type of an assertion fence.
type AssertionType string

const (
	// AssertC expects the generated C to equal the fence content.
	AssertC AssertionType = "c"

	// AssertCContains expects every line of the fence to appear in the
	// generated C.
	AssertCContains AssertionType = "c-contains"

	// AssertLLVMContains expects every line of the fence to appear in the
	// generated LLVM IR.
	AssertLLVMContains AssertionType = "llvm-contains"

	// AssertCompileError expects compilation to fail with the fence content
	// as its error message.
	AssertCompileError AssertionType = "compile-error"
)

// Assertion is a single assertion of a case.
type Assertion struct {
	Type    AssertionType
	Content string

	// Line is the line of the fence in the Markdown document.
	Line int
}

// Case is a complete test case extracted from Markdown.
type Case struct {
	Name       string
	Input      string
	Assertions []Assertion
}

// Lines returns the non-blank lines of the assertion.
func (a Assertion) Lines() []string {
	var lines []string
	for _, line := range strings.Split(a.Content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// ExtractCases parses a Markdown document and extracts its test cases in
// document order.
func ExtractCases(markdown string) ([]Case, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []Case
	var curr *Case

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}

			if curr != nil {
				if err := validateCase(curr); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *curr)
			}

			curr = &Case{Name: strings.TrimPrefix(heading, "Test: ")}
		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			line := lineOf(n, source)

			if language == "" {
				return ast.WalkContinue, nil
			}

			if curr == nil {
				return ast.WalkStop, fmt.Errorf("linha %d: bloco '%s' fora de um caso de teste", line, language)
			}

			content := strings.TrimRight(fenceContent(n, source), "\n")

			switch {
			case language == InputFence:
				if curr.Input != "" {
					return ast.WalkStop, fmt.Errorf("linha %d: mais de um programa no caso '%s'", line, curr.Name)
				}
				curr.Input = content
			case isAssertion(language):
				curr.Assertions = append(curr.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    line,
				})
			default:
				return ast.WalkStop, fmt.Errorf("linha %d: bloco desconhecido '%s' no caso '%s'", line, language, curr.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if curr != nil {
		if err := validateCase(curr); err != nil {
			return nil, err
		}
		cases = append(cases, *curr)
	}

	return cases, nil
}

// isAssertion returns whether a fence language names an assertion.
func isAssertion(language string) bool {
	switch AssertionType(language) {
	case AssertC, AssertCContains, AssertLLVMContains, AssertCompileError:
		return true
	}

	return false
}

// validateCase ensures a case has a program and at least one assertion.
func validateCase(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("caso '%s' não possui programa", c.Name)
	}

	if len(c.Assertions) == 0 {
		return fmt.Errorf("caso '%s' não possui asserções", c.Name)
	}

	return nil
}

// nodeText extracts the plain text of a node.
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}

		return ast.WalkContinue, nil
	})

	return buf.String()
}

// fenceContent extracts the content of a fenced code block.
func fenceContent(fence *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	lines := fence.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}

	return buf.String()
}

// lineOf returns the line on which the content of a block starts.
func lineOf(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}

	start := node.Lines().At(0).Start
	if start > len(source) {
		start = len(source)
	}

	return bytes.Count(source[:start], []byte("\n")) + 1
}
