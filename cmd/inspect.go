package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/syntax"
	"github.com/kr/pretty"
)

// execTokensCommand prints the token stream of a file.
func execTokensCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	src := readSource(path)

	toks, err := syntax.Tokenize(src)
	if err != nil {
		report.ReportError(path, src, "Tokens", err)
		os.Exit(1)
	}

	dumpTokens(os.Stdout, toks)
}

// execASTCommand prints the syntax tree of a file.
func execASTCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	src := readSource(path)

	prog, err := syntax.ParseSource(src)
	if err != nil {
		report.ReportError(path, src, "AST", err)
		os.Exit(1)
	}

	dumpProgram(os.Stdout, prog, result.HasFlag("raw"))
}

// dumpTokens writes one token per line: its position, its kind and its text.
func dumpTokens(w io.Writer, toks []*syntax.Token) {
	for _, tok := range toks {
		fmt.Fprintf(w, "%4d:%-4d %-16s %q\n", tok.Line, tok.Col, syntax.KindName(tok.Kind), tok.Value)
	}
}

// dumpProgram writes a program as S-expressions or, if `raw` is set, as the
// Go values of its nodes.
func dumpProgram(w io.Writer, prog *ast.Program, raw bool) {
	if raw {
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(prog))
		return
	}

	fmt.Fprintln(w, ast.SExpr(prog))
}
