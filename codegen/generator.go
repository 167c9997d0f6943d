package codegen

import (
	"fmt"
	"strings"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
)

// Options configures the shape of the generated C source.
type Options struct {
	// The size of the fixed buffer backing every `cadeia`.
	StringBufferSize int

	// The text used for one level of indentation.
	Indent string

	// Whether `escreva` terminates its output with a newline.
	WriteNewline bool
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		StringBufferSize: common.StringBufferSize,
		Indent:           "  ",
	}
}

// Generator is responsible for converting an analyzed Portugol program into C
// source text.  The symbol table and type table are treated as read-only.
type Generator struct {
	table *sem.SymbolTable
	types sem.TypeTable
	opts  Options

	// The C source being written.
	sb strings.Builder

	// The current indentation level.
	depth int
}

// Generate generates the C translation of a program.  The program must have
// been successfully analyzed: any error returned is an internal compiler error.
func Generate(prog *ast.Program, table *sem.SymbolTable, types sem.TypeTable, opts Options) (string, error) {
	if opts.StringBufferSize <= 0 {
		opts.StringBufferSize = common.StringBufferSize
	}

	g := &Generator{table: table, types: types, opts: opts}

	g.writeLine("#include <stdio.h>")
	g.writeLine("#include <string.h>")
	g.writeLine("")

	// Prototypes first so routines can call each other in any order.
	var routines []ast.Stmt
	for _, stmt := range prog.Stmts {
		if _, ok := ast.AsRoutine(stmt); ok {
			routines = append(routines, stmt)
		}
	}

	if len(routines) > 0 {
		for _, stmt := range routines {
			header, err := g.routineHeader(stmt)
			if err != nil {
				return "", err
			}

			g.writeLine("%s;", header)
		}

		g.writeLine("")
	}

	for _, stmt := range routines {
		if err := g.generateRoutine(stmt); err != nil {
			return "", err
		}

		g.writeLine("")
	}

	// Every other top-level statement goes into `main`.
	g.writeLine("int main() {")
	g.depth++

	for _, stmt := range prog.Stmts {
		if _, ok := ast.AsRoutine(stmt); ok {
			continue
		}

		if err := ast.VisitStmt(g, stmt); err != nil {
			return "", err
		}
	}

	g.writeLine("return 0;")
	g.depth--
	g.writeLine("}")

	return g.sb.String(), nil
}

// -----------------------------------------------------------------------------

// writeLine writes one indented line of C.  Empty lines carry no indentation.
func (g *Generator) writeLine(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)

	if line != "" {
		g.sb.WriteString(strings.Repeat(g.opts.Indent, g.depth))
		g.sb.WriteString(line)
	}

	g.sb.WriteByte('\n')
}

// writeBlock writes the statements of a block one level deeper.
func (g *Generator) writeBlock(stmts []ast.Stmt) error {
	g.depth++
	defer func() { g.depth-- }()

	return ast.VisitBlock(g, stmts)
}

// cReserved is the set of names a Portugol identifier may not keep in C: the
// keywords of the C dialects a compiler may default to, `main`, and every
// function, type and macro declared by the headers the generated file
// includes.
var cReserved = makeNameSet(
	// Keywords, including the C11 and C23 ones and GNU `asm`/`typeof`.
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Alignas", "_Alignof",
	"_Atomic", "_Bool", "_Complex", "_Generic", "_Imaginary", "_Noreturn",
	"_Static_assert", "_Thread_local", "alignas", "alignof", "bool",
	"constexpr", "false", "nullptr", "static_assert", "thread_local", "true",
	"typeof", "typeof_unqual", "asm",

	"main",

	// <stdio.h>
	"FILE", "fpos_t", "size_t", "off_t", "ssize_t", "va_list",
	"NULL", "EOF", "BUFSIZ", "FILENAME_MAX", "FOPEN_MAX", "L_tmpnam",
	"TMP_MAX", "SEEK_SET", "SEEK_CUR", "SEEK_END", "_IOFBF", "_IOLBF",
	"_IONBF", "P_tmpdir", "L_ctermid", "stdin", "stdout", "stderr",
	"printf", "fprintf", "sprintf", "snprintf", "dprintf", "vprintf",
	"vfprintf", "vsprintf", "vsnprintf", "vdprintf", "scanf", "fscanf",
	"sscanf", "vscanf", "vfscanf", "vsscanf", "fopen", "freopen", "fdopen",
	"fmemopen", "open_memstream", "fclose", "fflush", "fread", "fwrite",
	"fgetc", "fgets", "fputc", "fputs", "getc", "getchar", "gets", "putc",
	"putchar", "puts", "ungetc", "getline", "getdelim", "getw", "putw",
	"getc_unlocked", "getchar_unlocked", "putc_unlocked",
	"putchar_unlocked", "flockfile", "funlockfile", "ftrylockfile", "fseek",
	"fseeko", "ftell", "ftello", "rewind", "fgetpos", "fsetpos", "clearerr",
	"feof", "ferror", "fileno", "perror", "remove", "rename", "renameat",
	"tmpfile", "tmpnam", "tempnam", "setbuf", "setvbuf", "popen", "pclose",
	"ctermid",

	// <string.h>
	"memcpy", "memmove", "memset", "memcmp", "memchr", "memccpy", "strcpy",
	"strncpy", "stpcpy", "stpncpy", "strcat", "strncat", "strcmp",
	"strncmp", "strcoll", "strxfrm", "strchr", "strrchr", "strspn",
	"strcspn", "strpbrk", "strstr", "strtok", "strtok_r", "strerror",
	"strerror_r", "strlen", "strnlen", "strdup", "strndup", "strsignal",
	"strsep", "strcasecmp", "strncasecmp", "bcmp", "bcopy", "bzero",
	"explicit_bzero", "index", "rindex", "ffs",
)

// makeNameSet builds a set from a list of names.
func makeNameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// cName returns the C name of a Portugol identifier.
func cName(name string) string {
	if _, ok := cReserved[name]; ok {
		return name + "_"
	}

	return name
}
