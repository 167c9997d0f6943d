package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/casebook"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/mods"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/nalgeon/be"
)

func TestCaseBooks(t *testing.T) {
	files, err := filepath.Glob("testdata/*.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".md"), func(t *testing.T) {
			content, err := os.ReadFile(file)
			be.Err(t, err, nil)

			cases, err := casebook.ExtractCases(string(content))
			be.Err(t, err, nil)

			for _, c := range cases {
				t.Run(c.Name, func(t *testing.T) {
					runCase(t, c)
				})
			}
		})
	}
}

func runCase(t *testing.T, c casebook.Case) {
	cProfile := mods.DefaultProfile()
	llvmProfile := mods.DefaultProfile()
	llvmProfile.OutputFormat = mods.FormatLLVM

	for _, assertion := range c.Assertions {
		switch assertion.Type {
		case casebook.AssertC:
			res, err := Compile(c.Input, cProfile)
			be.Err(t, err, nil)
			be.Equal(t, strings.TrimRight(res.Output, "\n"), assertion.Content)
		case casebook.AssertCContains:
			res, err := Compile(c.Input, cProfile)
			be.Err(t, err, nil)
			assertContainsLines(t, res.Output, assertion)
		case casebook.AssertLLVMContains:
			res, err := Compile(c.Input, llvmProfile)
			be.Err(t, err, nil)
			assertContainsLines(t, res.Output, assertion)
		case casebook.AssertCompileError:
			_, err := Compile(c.Input, cProfile)

			var cerr *report.CompileError
			be.True(t, errors.As(err, &cerr))
			be.Equal(t, cerr.Error(), assertion.Content)
		}
	}
}

func assertContainsLines(t *testing.T, output string, assertion casebook.Assertion) {
	t.Helper()

	for _, line := range assertion.Lines() {
		if !strings.Contains(output, line) {
			t.Errorf("line %d: %q not found in output:\n%s", assertion.Line, line, output)
		}
	}
}

func TestCompileKeepsIntermediateResults(t *testing.T) {
	res, err := Compile("inteiro x;\nx = 1;", nil)
	be.Err(t, err, nil)

	be.Equal(t, len(res.Tokens), 8)
	be.Equal(t, len(res.Program.Stmts), 2)
	be.Equal(t, len(res.Types), 2)
	be.True(t, strings.HasPrefix(res.Output, "#include <stdio.h>\n"))
}

func TestCompileStopsAtFirstError(t *testing.T) {
	res, err := Compile("inteiro x;\nx = y;", nil)

	var cerr *report.CompileError
	be.True(t, errors.As(err, &cerr))
	be.Equal(t, cerr.Kind, report.KindSemantic)
	be.True(t, res.Program != nil)
	be.Equal(t, res.Output, "")
}

func TestCompileErrorKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind report.ErrorKind
	}{
		{"inteiro x; x = 1 @ 2;", report.KindLexical},
		{"inteiro x x = 1;", report.KindSyntax},
		{"real r;\nr = \"a\";", report.KindSemantic},
	}

	for _, test := range tests {
		_, err := Compile(test.src, nil)

		var cerr *report.CompileError
		be.True(t, errors.As(err, &cerr))
		be.Equal(t, cerr.Kind, test.kind)
	}
}

func TestCheckDoesNotGenerate(t *testing.T) {
	res, err := Check("escreva(\"oi\");")
	be.Err(t, err, nil)
	be.Equal(t, res.Output, "")
	be.True(t, res.Table != nil)
}

func TestGenerateBeforeAnalyzeIsInternalError(t *testing.T) {
	err := NewCompiler("escreva(1);", nil).Generate()

	var ice *report.InternalError
	be.True(t, errors.As(err, &ice))
}
