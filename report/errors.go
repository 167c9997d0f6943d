package report

import "fmt"

// TextSpan represents a range or "span" of source text.  Lines and columns are
// one-indexed, matching the positions the lexer assigns to tokens.  The start
// position is the first character of the span; the end column is one past the
// last character.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// ErrorKind enumerates the kinds of user-facing compilation errors.
type ErrorKind int

// Enumeration of error kinds.
const (
	KindLexical ErrorKind = iota
	KindSyntax
	KindSemantic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "Erro Léxico"
	case KindSyntax:
		return "Erro Sintático"
	default:
		return "Erro Semântico"
	}
}

// CompileError is an error in the user's program.  Compilation stops at the
// first one encountered.
type CompileError struct {
	// The kind of the error.
	Kind ErrorKind

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil when no position
	// is known.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	if ce.Span == nil {
		return ce.Message
	}

	return fmt.Sprintf("[linha %d, coluna %d] %s", ce.Span.StartLine, ce.Span.StartCol, ce.Message)
}

// Raise creates a new compile error of the given kind.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// InternalError is a compiler bug: a broken invariant between two stages of
// the pipeline.  It is never the user's fault.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "erro interno do compilador: " + ie.Message
}

// ICE creates a new internal compiler error.
func ICE(msg string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(msg, args...)}
}

// -----------------------------------------------------------------------------

// CatchErrors recovers a `*CompileError` or `*InternalError` thrown by a
// `panic` during a stage of compilation and stores it in `err`.  Any other
// panic is propagated.
// NB: This function must ALWAYS be deferred.
func CatchErrors(err *error) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case *CompileError:
			*err = v
		case *InternalError:
			*err = v
		default:
			panic(x)
		}
	}
}
