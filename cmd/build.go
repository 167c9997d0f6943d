package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/build"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/mods"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
)

// buildTarget is the source and profile selected for a build.
type buildTarget struct {
	fileName string
	src      string
	profile  *mods.BuildProfile
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult) {
	target := selectBuildTarget(result)

	if output := stringArg(result, "output"); output != "" {
		target.profile.OutputPath = output
	}

	if formatName := stringArg(result, "format"); formatName != "" {
		format, _ := mods.FormatByName(formatName)
		target.profile.OutputFormat = format
	}

	// Progress output would be mixed into the generated code.
	if target.profile.OutputPath == "" {
		report.InitReporter(report.LogLevelError)
	}

	report.ReportCompileHeader(common.PortugolVersion, mods.FormatName(target.profile.OutputFormat))

	c := build.NewCompiler(target.src, target.profile)

	report.ReportBeginPhase("Analisando")
	if err := c.Analyze(); err != nil {
		failBuild(target, err)
	}
	report.ReportEndPhase(true)

	report.ReportBeginPhase("Gerando")
	if err := c.Generate(); err != nil {
		failBuild(target, err)
	}
	report.ReportEndPhase(true)

	if err := writeOutput(target.profile.OutputPath, c.Result().Output); err != nil {
		report.ReportStdError("Saída", err)
		os.Exit(1)
	}

	report.ReportCompilationFinished(target.profile.OutputPath)
}

// selectBuildTarget decides what to build: the file given on the command line,
// else the module enclosing the working directory, else the sample program.
func selectBuildTarget(result *olive.ArgParseResult) *buildTarget {
	selectedProfile := stringArg(result, "profile")

	if path, ok := result.PrimaryArg(); ok && path != "" {
		if selectedProfile != "" {
			report.ReportWarning("perfil `%s` ignorado: compilando um arquivo avulso", selectedProfile)
		}

		return &buildTarget{fileName: path, src: readSource(path), profile: mods.DefaultProfile()}
	}

	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("erro de caminho: %s", err.Error())
	}

	if root, ok := mods.FindModuleRoot(workDir); ok {
		mod, prof, err := mods.LoadModule(root, selectedProfile)
		if err != nil {
			report.ReportFatal("erro ao carregar o módulo: %s", err.Error())
		}

		return &buildTarget{fileName: mod.EntryPath, src: readSource(mod.EntryPath), profile: prof}
	}

	return &buildTarget{fileName: sampleFileName, src: sampleProgram, profile: mods.DefaultProfile()}
}

// failBuild reports a failed compilation and exits.
func failBuild(target *buildTarget, err error) {
	report.ReportEndPhase(false)
	report.ReportError(target.fileName, target.src, "Compilação", err)
	report.ReportCompilationFinished(target.profile.OutputPath)
	os.Exit(1)
}

// writeOutput writes the generated code to `path`, or to stdout when the path
// is empty.
func writeOutput(path, output string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(output)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(output), 0o644)
}

// execCheckCommand executes the check subcommand: the file is analyzed but no
// code is generated.
func execCheckCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	src := readSource(path)

	if _, err := build.Check(src); err != nil {
		report.ReportError(path, src, "Verificação", err)
		os.Exit(1)
	}

	report.ReportInfo("Verificação", "nenhum erro encontrado em "+path)
}
