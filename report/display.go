package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Erro Interno")
	ErrorColorFG.Println(" " + message)
	InfoColorFG.Println("\nIsso não deveria acontecer: por favor abra uma issue no GitHub.")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Erro Fatal")
	ErrorColorFG.Println(" " + message)
}

// displayStdError displays a standard Go error.
func displayStdError(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// displayWarning displays a warning message.
func displayWarning(msg string) {
	WarnStyleBG.Print("Aviso")
	WarnColorFG.Println(" " + msg)
}

// displayInfo displays an informational message.
func displayInfo(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileError displays a compile error: a banner naming the error kind
// and the file, the message and the selected source text.
func displayCompileError(fileName, src string, cerr *CompileError) {
	displayBanner(cerr.Kind.String(), fileName)
	fmt.Println(cerr.Error())

	if cerr.Span != nil {
		fmt.Println()

		for i, line := range SourceSelection(src, cerr.Span) {
			// Even lines are source text, odd lines are caret underlining.
			if i%2 == 0 {
				fmt.Println(line)
			} else {
				ErrorColorFG.Println(line)
			}
		}
	}

	fmt.Println()
}

// displayBanner displays the banner on top of all compile errors.
func displayBanner(label, fileName string) {
	fmt.Print("\n\n-- ")
	ErrorStyleBG.Print(label)
	fmt.Print(" ")

	fileName = filepath.Base(fileName)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - len(label) - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// SourceSelection renders the lines of `src` covered by `span` followed each by
// a line of carets underlining the selected columns.  Tabs are expanded to four
// spaces.  It returns nil if the span lies outside of the source text.
func SourceSelection(src string, span *TextSpan) []string {
	lines := strings.Split(src, "\n")
	if span == nil || span.StartLine < 1 || span.StartLine > len(lines) {
		return nil
	}

	endLine := span.EndLine
	if endLine < span.StartLine {
		endLine = span.StartLine
	} else if endLine > len(lines) {
		endLine = len(lines)
	}

	numWidth := len(strconv.Itoa(endLine))
	lineNumFmtStr := "%" + strconv.Itoa(numWidth) + "d | "

	var selection []string
	for ln := span.StartLine; ln <= endLine; ln++ {
		line := strings.TrimRight(lines[ln-1], "\r")
		selection = append(selection, fmt.Sprintf(lineNumFmtStr, ln)+strings.ReplaceAll(line, "\t", "    "))

		// Underlining starts at the start column on the first line and
		// continues from the beginning of the line on all following lines.
		startCol := 1
		if ln == span.StartLine {
			startCol = span.StartCol
		}

		// Underlining runs to the end of every line but the last.
		endCol := len([]rune(line)) + 1
		if ln == endLine && span.EndCol > 0 {
			endCol = span.EndCol
		}

		caretStart, caretEnd := visualColumn(line, startCol), visualColumn(line, endCol)
		if caretEnd <= caretStart {
			caretEnd = caretStart + 1
		}

		selection = append(selection,
			strings.Repeat(" ", numWidth)+" | "+strings.Repeat(" ", caretStart)+strings.Repeat("^", caretEnd-caretStart),
		)
	}

	return selection
}

// visualColumn returns the number of display cells before the one-indexed
// column `col` of `line`.
func visualColumn(line string, col int) int {
	cells := 0
	n := 0
	for _, c := range line {
		if n >= col-1 {
			return cells
		}

		if c == '\t' {
			cells += 4
		} else {
			cells++
		}

		n++
	}

	if col-1 > n {
		cells += col - 1 - n
	}

	return cells
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler information before compilation.
func displayCompileHeader(version, format string) {
	fmt.Print("portugolc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- saída: ")
	InfoColorFG.Println(format)
}

// phaseSpinner stores the current phase spinner.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Analisando")

// phaseLabel pads a phase name so that the phase timings line up.
func phaseLabel(phase string) string {
	padding := maxPhaseLength - len(phase) + 2
	if padding < 1 {
		padding = 1
	}

	return phase + strings.Repeat(" ", padding)
}

// displayBeginPhase displays the beginning of a compilation phase.
func displayBeginPhase(phase string) {
	currentPhase = phase
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Ok",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Falha",
		},
	}

	phaseSpinner, _ = spinner.Start(phaseLabel(phase) + "...")
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase.
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				phaseLabel(currentPhase),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(phaseLabel(currentPhase))
		}

		phaseSpinner = nil
	}
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, outputPath string, elapsed time.Duration) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("Tudo certo! ")
		fmt.Print("saída escrita em ")
		InfoColorFG.Print(outputPath)
	} else {
		ErrorColorFG.Print("Falha na compilação. ")
	}

	fmt.Printf(" (%.3fs)\n", elapsed.Seconds())
}
