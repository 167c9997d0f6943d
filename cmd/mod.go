package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/mods"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
)

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.ReportStdError("Erro de caminho", err)
		os.Exit(1)
	}

	switch subcmdName {
	case "init":
		modName, _ := subResult.PrimaryArg()
		if err := initModule(modName, workDir); err != nil {
			report.ReportStdError("Erro ao inicializar módulo", err)
			os.Exit(1)
		}

		report.ReportInfo("Módulo", "módulo `"+modName+"` criado em "+workDir)
	}
}

// initModule creates a module in `dir` along with its entry file, seeded with
// the sample program unless it already exists.
func initModule(name, dir string) error {
	if err := mods.InitModule(name, dir); err != nil {
		return err
	}

	entryPath := filepath.Join(dir, "main"+common.SrcFileExtension)
	if _, err := os.Stat(entryPath); err == nil {
		return nil
	}

	return os.WriteFile(entryPath, []byte(sampleProgram), 0o644)
}
