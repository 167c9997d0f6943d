package generate

import (
	"fmt"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Options configures the generated LLVM module.
type Options struct {
	// The size of the fixed buffer backing every `cadeia` local.
	StringBufferSize int

	// Whether `escreva` terminates its output with a newline.
	WriteNewline bool
}

// llvmVar is a variable visible during generation.
type llvmVar struct {
	// The storage of the variable: an `alloca` for locals and numeric
	// parameters, the `i8*` parameter itself for string parameters.
	ptr value.Value

	// The Portugol type of the variable.
	typ typing.PrimType

	// Whether `ptr` points to a `[N x i8]` buffer rather than being an `i8*`.
	buffer bool
}

// Generator is responsible for converting an analyzed Portugol program into an
// LLVM module.
type Generator struct {
	table *sem.SymbolTable
	types sem.TypeTable
	opts  Options

	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcs maps routine names to their LLVM functions.
	funcs map[string]*ir.Func

	// The C library functions called by generated code.
	printf, snprintf *ir.Func

	// stringType is the type of a `cadeia` buffer.
	stringType types.Type

	// globalCounter is used to name interned string globals.
	globalCounter int

	// interned maps literal text to its global.
	interned map[string]*ir.Global

	// enclosingFunc is the function being generated.
	enclosingFunc *ir.Func

	// varBlock is the entry block of the enclosing function: every `alloca`
	// is placed there.
	varBlock *ir.Block

	// block is the block being generated.
	block *ir.Block

	// localScopes is the stack of local scopes used during generation.
	localScopes []map[string]*llvmVar
}

// Generate generates the LLVM module of a program.  The program must have been
// successfully analyzed: any error returned is an internal compiler error.
func Generate(prog *ast.Program, table *sem.SymbolTable, typeTable sem.TypeTable, opts Options) (*ir.Module, error) {
	if opts.StringBufferSize <= 0 {
		opts.StringBufferSize = common.StringBufferSize
	}

	g := &Generator{
		table:      table,
		types:      typeTable,
		opts:       opts,
		mod:        ir.NewModule(),
		funcs:      make(map[string]*ir.Func),
		interned:   make(map[string]*ir.Global),
		stringType: types.NewArray(uint64(opts.StringBufferSize), types.I8),
	}

	g.declareLibC()

	// Declare every routine before generating any body so calls may refer to
	// routines declared later in the source.
	for _, stmt := range prog.Stmts {
		if err := g.declareRoutine(stmt); err != nil {
			return nil, err
		}
	}

	for _, stmt := range prog.Stmts {
		if err := g.genRoutine(stmt); err != nil {
			return nil, err
		}
	}

	if err := g.genMain(prog); err != nil {
		return nil, err
	}

	return g.mod, nil
}

// declareLibC declares the C library functions used by generated code.
func (g *Generator) declareLibC() {
	g.printf = g.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	g.printf.Sig.Variadic = true

	g.snprintf = g.mod.NewFunc(
		"snprintf",
		types.I32,
		ir.NewParam("dst", types.I8Ptr),
		ir.NewParam("size", types.I64),
		ir.NewParam("format", types.I8Ptr),
	)
	g.snprintf.Sig.Variadic = true
}

// -----------------------------------------------------------------------------

// beginFunc positions the generator at the start of a new function body.
func (g *Generator) beginFunc(fn *ir.Func) {
	g.enclosingFunc = fn
	g.varBlock = fn.NewBlock("entry")
	g.block = g.appendBlock()
	g.localScopes = nil
	g.pushScope()
}

// endFunc terminates the body of the enclosing function.  If the last block is
// missing a terminator, it returns `fallback` (nil for `void`).
func (g *Generator) endFunc(fallback value.Value) {
	if g.block.Term == nil {
		g.block.NewRet(fallback)
	}

	// The entry block only holds allocations, so it falls through into the
	// first code block.
	g.varBlock.NewBr(g.enclosingFunc.Blocks[1])

	g.popScope()
	g.enclosingFunc = nil
}

// appendBlock appends a new block to the enclosing function.
func (g *Generator) appendBlock() *ir.Block {
	return g.enclosingFunc.NewBlock(fmt.Sprintf("bb%d", len(g.enclosingFunc.Blocks)-1))
}

// pushScope pushes a new local scope.
func (g *Generator) pushScope() {
	g.localScopes = append(g.localScopes, make(map[string]*llvmVar))
}

// popScope pops the innermost local scope.
func (g *Generator) popScope() {
	g.localScopes = g.localScopes[:len(g.localScopes)-1]
}

// defineLocal defines a variable in the innermost scope.
func (g *Generator) defineLocal(name string, v *llvmVar) {
	g.localScopes[len(g.localScopes)-1][name] = v
}

// lookup looks up a variable from the innermost scope outward.
func (g *Generator) lookup(name string) (*llvmVar, error) {
	for i := len(g.localScopes) - 1; i >= 0; i-- {
		if v, ok := g.localScopes[i][name]; ok {
			return v, nil
		}
	}

	return nil, report.ICE("variável '%s' sem armazenamento", name)
}

// internString returns a pointer to the first byte of a global holding the
// null-terminated string `s`.  Identical strings share one global.
func (g *Generator) internString(s string) value.Value {
	global, ok := g.interned[s]
	if !ok {
		global = g.mod.NewGlobalDef(fmt.Sprintf("str.%d", g.globalCounter), constant.NewCharArrayFromString(s+"\x00"))
		g.globalCounter++
		g.interned[s] = global
	}

	zero := constant.NewInt(types.I32, 0)
	return g.block.NewGetElementPtr(types.NewArray(uint64(len(s)+1), types.I8), global, zero, zero)
}
