package cmd

import (
	_ "embed"
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
)

// sampleProgram is compiled when `build` finds neither a file nor a module.
//
//go:embed exemplo.por
var sampleProgram string

// sampleFileName is the name under which the sample program is reported.
const sampleFileName = "exemplo" + common.SrcFileExtension

// Execute is the main entry point for the `portugolc` CLI utility
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("portugolc", "portugolc compila programas Portugol para C", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "o nível de log do compilador", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compila um arquivo ou o módulo atual", true)
	buildCmd.AddPrimaryArg("file", "o arquivo Portugol a compilar", false)
	buildCmd.AddStringArg("profile", "p", "o nome do perfil de compilação", false)
	buildCmd.AddStringArg("output", "o", "o arquivo de saída", false)
	buildCmd.AddSelectorArg("format", "f", "o formato de saída", false, []string{"c", "llvm"})

	checkCmd := cli.AddSubcommand("check", "verifica um arquivo sem gerar código", true)
	checkCmd.AddPrimaryArg("file", "o arquivo Portugol a verificar", true)

	tokensCmd := cli.AddSubcommand("tokens", "exibe os tokens de um arquivo", true)
	tokensCmd.AddPrimaryArg("file", "o arquivo Portugol", true)

	astCmd := cli.AddSubcommand("ast", "exibe a árvore sintática de um arquivo", true)
	astCmd.AddPrimaryArg("file", "o arquivo Portugol", true)
	astCmd.AddFlag("raw", "r", "exibe as estruturas Go em vez de expressões S")

	cli.AddSubcommand("repl", "inicia o modo interativo", false)

	modCmd := cli.AddSubcommand("mod", "gerencia módulos", true)
	modInitCmd := modCmd.AddSubcommand("init", "inicializa um módulo no diretório atual", true)
	modInitCmd.AddPrimaryArg("module-name", "o nome do módulo", true)

	cli.AddSubcommand("version", "exibe a versão do compilador", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	if err := report.InitReporterByName(result.Arguments["loglevel"].(string)); err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		report.ReportFatal("nenhum comando informado; use `portugolc -h` para ajuda")
	}

	switch subcmdName {
	case "build":
		execBuildCommand(subResult)
	case "check":
		execCheckCommand(subResult)
	case "tokens":
		execTokensCommand(subResult)
	case "ast":
		execASTCommand(subResult)
	case "repl":
		execReplCommand()
	case "mod":
		execModCommand(subResult)
	case "version":
		report.ReportInfo("Versão do Portugol", common.PortugolVersion)
	}
}

// stringArg returns the value of an optional string argument.
func stringArg(result *olive.ArgParseResult, name string) string {
	if val, ok := result.Arguments[name]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}

	return ""
}

// readSource reads a source file, exiting on failure.
func readSource(path string) string {
	buff, err := os.ReadFile(path)
	if err != nil {
		report.ReportFatal("erro ao ler `%s`: %s", path, err.Error())
	}

	return string(buff)
}
