package report

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors, warnings, phase progress and closing message (DEFAULT)
)

// LogLevelNames maps the log level names accepted on the command line and in
// module files to their log level.
var LogLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// reporter is responsible for displaying all compiler output in a consistent,
// synchronized fashion.
type reporter struct {
	logLevel int

	// errorCount is the number of errors reported.
	errorCount int

	// warnings is the list of warnings to display at the end of compilation.
	warnings []string

	// m is the mutex used to synchronize the printing of messages.
	m *sync.Mutex

	startTime time.Time
}

// rep is the global reporter.
var rep = reporter{logLevel: LogLevelVerbose, m: &sync.Mutex{}}

// InitReporter initializes the global reporter with the provided log level.
func InitReporter(logLevel int) {
	rep = reporter{
		logLevel:  logLevel,
		m:         &sync.Mutex{},
		startTime: time.Now(),
	}
}

// InitReporterByName initializes the global reporter with a named log level.
func InitReporterByName(name string) error {
	lvl, ok := LogLevelNames[name]
	if !ok {
		return fmt.Errorf("nível de log desconhecido: `%s`", name)
	}

	InitReporter(lvl)
	return nil
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// -----------------------------------------------------------------------------

// ReportError reports an error produced by the pipeline.  Compile errors are
// displayed with the offending source text, internal errors as ICEs and
// anything else as a standard Go error tagged with `tag`.
func ReportError(fileName, src, tag string, err error) {
	var cerr *CompileError
	var ierr *InternalError
	switch {
	case errors.As(err, &cerr):
		ReportCompileError(fileName, src, cerr)
	case errors.As(err, &ierr):
		ReportICE(ierr)
	default:
		ReportStdError(tag, err)
	}
}

// ReportCompileError reports an error in the user's program.  `src` is the full
// source text of the file, used to display the erroneous selection.
func ReportCompileError(fileName, src string, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayCompileError(fileName, src, cerr)
	}
}

// ReportICE reports an internal compiler error.  These are always displayed
// regardless of log level.
func ReportICE(ierr *InternalError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	displayEndPhase(false)
	displayICE(ierr.Message)
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayStdError(tag, err)
	}
}

// ReportFatal reports a fatal error and exits the program.
func ReportFatal(msg string, args ...interface{}) {
	rep.m.Lock()

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayFatal(fmt.Sprintf(msg, args...))
	}

	rep.m.Unlock()
	os.Exit(1)
}

// ReportWarning records a warning to be displayed when compilation finishes.
func ReportWarning(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warnings = append(rep.warnings, fmt.Sprintf(msg, args...))
}

// ReportInfo displays an informational message.  Info messages are the direct
// output of a command so they ignore the log level.
func ReportInfo(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayInfo(tag, msg)
}

// -----------------------------------------------------------------------------
// The functions below only display when the log level is verbose.

// ReportCompileHeader displays the compiler version and the selected output
// format.
func ReportCompileHeader(version, format string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(version, format)
	}
}

// ReportBeginPhase displays the start of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// ReportEndPhase displays the end of the current compilation phase.
func ReportEndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// ReportCompilationFinished displays the closing message for compilation.
func ReportCompilationFinished(outputPath string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		for _, warning := range rep.warnings {
			displayWarning(warning)
		}
	}

	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(rep.errorCount == 0, outputPath, time.Since(rep.startTime))
	}
}
