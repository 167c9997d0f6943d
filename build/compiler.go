package build

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/codegen"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/generate"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/mods"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/syntax"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/walk"
)

// Result holds everything the pipeline produced for one source file.
type Result struct {
	// Tokens is the token stream, ending with EOF.
	Tokens []*syntax.Token

	// Program is the parsed program.
	Program *ast.Program

	// Table is the symbol table left by semantic analysis.
	Table *sem.SymbolTable

	// Types is the inferred type of every expression.
	Types sem.TypeTable

	// Output is the generated C source or LLVM IR.  It is empty until the
	// program has been generated.
	Output string
}

// Compiler runs the compilation pipeline over a single source file.  It
// performs no I/O: reading the source and writing the output are up to the
// caller.
type Compiler struct {
	// src is the source text being compiled.
	src string

	// profile is the build profile used for generation.
	profile *mods.BuildProfile

	result Result
}

// NewCompiler creates a new compiler for the source text `src`.  A nil profile
// selects the default profile.
func NewCompiler(src string, profile *mods.BuildProfile) *Compiler {
	if profile == nil {
		profile = mods.DefaultProfile()
	}

	return &Compiler{src: src, profile: profile}
}

// Result returns what the pipeline has produced so far.
func (c *Compiler) Result() *Result {
	return &c.result
}

// Analyze runs the lexer, the parser and the semantic analyzer.  It stops at
// the first error.
func (c *Compiler) Analyze() (err error) {
	defer report.CatchErrors(&err)

	toks, err := syntax.Tokenize(c.src)
	if err != nil {
		return err
	}
	c.result.Tokens = toks

	prog, err := syntax.Parse(toks)
	if err != nil {
		return err
	}
	c.result.Program = prog

	table, types, err := walk.Analyze(prog)
	if err != nil {
		return err
	}
	c.result.Table = table
	c.result.Types = types

	return nil
}

// Generate runs the backend selected by the build profile.  It must be called
// after a successful call to Analyze.
func (c *Compiler) Generate() (err error) {
	defer report.CatchErrors(&err)

	if c.result.Types == nil {
		return report.ICE("geração de código antes da análise")
	}

	switch c.profile.OutputFormat {
	case mods.FormatC:
		out, err := codegen.Generate(c.result.Program, c.result.Table, c.result.Types, codegen.Options{
			StringBufferSize: c.profile.StringSize,
			Indent:           c.profile.IndentString(),
			WriteNewline:     c.profile.WriteNewline,
		})
		if err != nil {
			return err
		}

		c.result.Output = out
	case mods.FormatLLVM:
		mod, err := generate.Generate(c.result.Program, c.result.Table, c.result.Types, generate.Options{
			StringBufferSize: c.profile.StringSize,
			WriteNewline:     c.profile.WriteNewline,
		})
		if err != nil {
			return err
		}

		c.result.Output = mod.String()
	default:
		return report.ICE("formato de saída desconhecido: %d", c.profile.OutputFormat)
	}

	return nil
}

// -----------------------------------------------------------------------------

// Compile runs the whole pipeline over `src`.  The first error aborts
// compilation and is returned unchanged: a `*report.CompileError` for errors
// in the program, a `*report.InternalError` for compiler bugs.
func Compile(src string, profile *mods.BuildProfile) (*Result, error) {
	c := NewCompiler(src, profile)

	if err := c.Analyze(); err != nil {
		return c.Result(), err
	}

	if err := c.Generate(); err != nil {
		return c.Result(), err
	}

	return c.Result(), nil
}

// Check runs every stage of the pipeline except generation.
func Check(src string) (*Result, error) {
	c := NewCompiler(src, nil)
	err := c.Analyze()
	return c.Result(), err
}
