package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/build"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/mods"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/peterh/liner"
)

const replHelp = `Digite comandos Portugol; o programa é verificado a cada comando completo.
  :c       exibe o C do programa
  :llvm    exibe o LLVM IR do programa
  :ast     exibe a árvore sintática do programa
  :limpar  descarta o programa
  :sair    encerra`

// replSession is the state of a REPL: the source accepted so far and the lines
// of an unfinished command.
type replSession struct {
	accepted strings.Builder
	pending  strings.Builder
}

// Pending returns whether an unfinished command is being read.
func (s *replSession) Pending() bool {
	return s.pending.Len() > 0
}

// Feed adds a line to the session.  The whole program is rechecked each time:
// a line completing a valid command is accepted, an unfinished command waits
// for more lines and an invalid one is discarded and its error returned.
func (s *replSession) Feed(line string) error {
	s.pending.WriteString(line)
	s.pending.WriteByte('\n')

	_, err := build.Check(s.accepted.String() + s.pending.String())
	if err != nil && isIncomplete(err) {
		return nil
	}

	if err == nil {
		s.accepted.WriteString(s.pending.String())
	}

	s.pending.Reset()
	return err
}

// Reset discards the whole program.
func (s *replSession) Reset() {
	s.accepted.Reset()
	s.pending.Reset()
}

// Compile compiles the accepted program with the given output format.
func (s *replSession) Compile(format int) (string, error) {
	prof := mods.DefaultProfile()
	prof.OutputFormat = format
	prof.WriteNewline = true

	res, err := build.Compile(s.accepted.String(), prof)
	if err != nil {
		return "", err
	}

	return res.Output, nil
}

// isIncomplete returns whether an error is a syntax error caused by the input
// ending too early.
func isIncomplete(err error) bool {
	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		return false
	}

	return cerr.Kind == report.KindSyntax && strings.HasSuffix(cerr.Message, "mas veio EOF")
}

// runCommand runs a REPL command.  It returns true if the REPL should exit.
func (s *replSession) runCommand(cmd string, w io.Writer) bool {
	switch cmd {
	case ":sair":
		return true
	case ":limpar":
		s.Reset()
	case ":c", ":llvm":
		format := mods.FormatC
		if cmd == ":llvm" {
			format = mods.FormatLLVM
		}

		out, err := s.Compile(format)
		if err != nil {
			fmt.Fprintln(w, err)
		} else {
			fmt.Fprint(w, out)
		}
	case ":ast":
		res, err := build.Check(s.accepted.String())
		if err != nil {
			fmt.Fprintln(w, err)
		} else {
			fmt.Fprintln(w, ast.SExpr(res.Program))
		}
	default:
		fmt.Fprintln(w, replHelp)
	}

	return false
}

// handleLine processes one line of input.  It returns true if the REPL should
// exit.
func (s *replSession) handleLine(line string, w io.Writer) bool {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, ":") && !s.Pending() {
		return s.runCommand(trimmed, w)
	}

	if trimmed == "" && !s.Pending() {
		return false
	}

	if err := s.Feed(line); err != nil {
		fmt.Fprintln(w, err)
	}

	return false
}

// -----------------------------------------------------------------------------

// execReplCommand executes the repl subcommand.
func execReplCommand() {
	if !isInteractive() {
		runBufferedREPL(bufio.NewReader(os.Stdin), os.Stdout)
		return
	}

	runInteractiveREPL()
}

// runBufferedREPL runs the REPL over a non-terminal input.
func runBufferedREPL(reader *bufio.Reader, w io.Writer) {
	session := &replSession{}

	for {
		line, err := reader.ReadString('\n')
		if line != "" && session.handleLine(strings.TrimRight(line, "\r\n"), w) {
			return
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "erro de leitura: %v\n", err)
			}

			return
		}
	}
}

// runInteractiveREPL runs the REPL with line editing and history.
func runInteractiveREPL() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Println(replHelp)
	session := &replSession{}

	for {
		prompt := "portugol> "
		if session.Pending() {
			prompt = "......... "
		}

		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				session.pending.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "erro de leitura: %v\n", err)
				return
			}
		}

		if trimmed := strings.TrimSpace(input); trimmed != "" {
			state.AppendHistory(trimmed)
		}

		if session.handleLine(input, os.Stdout) {
			return
		}
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}

	return filepath.Join(home, ".portugol_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}
