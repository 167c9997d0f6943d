package mods

import "strings"

// PortugolModule represents a module: a directory holding a module file and
// the Portugol source it builds.
type PortugolModule struct {
	// Name is the name of the module.
	Name string

	// ModuleRoot is the path to the directory enclosing the module file.
	ModuleRoot string

	// EntryPath is the path to the source file compiled by the module.
	EntryPath string

	// Version is the compiler version the module was written for.
	Version string
}

// BuildProfile represents the profile the compiler uses to build: which
// backend to run, where to put its output and how to shape it.
type BuildProfile struct {
	// Name is the name of the profile.
	Name string

	// OutputPath is the path to the output file.  An empty path means the
	// output is written to stdout.
	OutputPath string

	// OutputFormat is the kind of output to produce.  This should be one of
	// the enumerated formats (prefixed `Format`).
	OutputFormat int

	// StringSize is the size of the buffer backing each `cadeia`.
	StringSize int

	// Indent is the number of spaces per indentation level of generated C.
	Indent int

	// WriteNewline indicates whether `escreva` ends its output with a newline.
	WriteNewline bool
}

// Available Output Formats
const (
	FormatC    = iota // C source
	FormatLLVM        // LLVM IR
)

// formatNames maps TOML format strings to enumerated format values.
var formatNames = map[string]int{
	"c":    FormatC,
	"llvm": FormatLLVM,
}

// FormatByName returns the format named by `name`.
func FormatByName(name string) (int, bool) {
	format, ok := formatNames[strings.ToLower(name)]
	return format, ok
}

// FormatName returns the TOML name of a format.
func FormatName(format int) string {
	for name, f := range formatNames {
		if f == format {
			return name
		}
	}

	return "?"
}

// IndentString returns the text of one indentation level.
func (bp *BuildProfile) IndentString() string {
	return strings.Repeat(" ", bp.Indent)
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, profile name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
