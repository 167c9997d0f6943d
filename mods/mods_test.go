package mods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/nalgeon/be"
)

func writeModFile(t *testing.T, dir, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(content), 0o644)
	be.Err(t, err, nil)
}

const exampleModFile = `[module]
name = "exemplo"
entry = "main.por"
portugol-version = "0.1.0"

[[module.profiles]]
name = "debug"
format = "c"
output = "out/exemplo.c"
string-size = 64
indent = 4
write-newline = true

[[module.profiles]]
name = "llvm"
format = "llvm"
output = "out/exemplo.ll"
default = true
`

func TestLoadModuleSelectsDefaultProfile(t *testing.T) {
	dir := t.TempDir()
	writeModFile(t, dir, exampleModFile)

	mod, prof, err := LoadModule(dir, "")
	be.Err(t, err, nil)

	be.Equal(t, mod.Name, "exemplo")
	be.Equal(t, mod.EntryPath, filepath.Join(dir, "main.por"))
	be.Equal(t, prof.Name, "llvm")
	be.Equal(t, prof.OutputFormat, FormatLLVM)
	be.Equal(t, prof.OutputPath, filepath.Join(dir, "out", "exemplo.ll"))
	be.Equal(t, prof.StringSize, common.StringBufferSize)
	be.Equal(t, prof.Indent, 2)
}

func TestLoadModuleSelectsNamedProfile(t *testing.T) {
	dir := t.TempDir()
	writeModFile(t, dir, exampleModFile)

	_, prof, err := LoadModule(dir, "debug")
	be.Err(t, err, nil)

	be.Equal(t, prof.OutputFormat, FormatC)
	be.Equal(t, prof.StringSize, 64)
	be.Equal(t, prof.IndentString(), "    ")
	be.True(t, prof.WriteNewline)

	_, _, err = LoadModule(dir, "release")
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "o módulo `exemplo` não possui o perfil `release`")
}

func TestLoadModuleFallsBackToFirstProfile(t *testing.T) {
	dir := t.TempDir()
	writeModFile(t, dir, `[module]
name = "m"
entry = "m.por"
portugol-version = "0.1.0"

[[module.profiles]]
name = "um"
format = "c"

[[module.profiles]]
name = "dois"
format = "llvm"
`)

	_, prof, err := LoadModule(dir, "")
	be.Err(t, err, nil)
	be.Equal(t, prof.Name, "um")
	be.Equal(t, prof.OutputPath, "")
}

func TestLoadModuleValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[module]\nentry = \"a.por\"\n[[module.profiles]]\nname = \"p\"\nformat = \"c\"\n"},
		{"bad name", "[module]\nname = \"1x\"\nentry = \"a.por\"\n"},
		{"missing entry", "[module]\nname = \"x\"\n[[module.profiles]]\nname = \"p\"\nformat = \"c\"\n"},
		{"no profiles", "[module]\nname = \"x\"\nentry = \"a.por\"\nportugol-version = \"0.1.0\"\n"},
		{"bad format", "[module]\nname = \"x\"\nentry = \"a.por\"\nportugol-version = \"0.1.0\"\n[[module.profiles]]\nname = \"p\"\nformat = \"exe\"\n"},
		{"bad string size", "[module]\nname = \"x\"\nentry = \"a.por\"\nportugol-version = \"0.1.0\"\n[[module.profiles]]\nname = \"p\"\nformat = \"c\"\nstring-size = -1\n"},
		{"no module table", "name = \"x\"\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			writeModFile(t, dir, test.content)

			_, _, err := LoadModule(dir, "")
			be.True(t, err != nil)
		})
	}
}

func TestInitModuleRoundTrip(t *testing.T) {
	dir := t.TempDir()

	err := InitModule("novo", dir)
	be.Err(t, err, nil)

	mod, prof, err := LoadModule(dir, "")
	be.Err(t, err, nil)
	be.Equal(t, mod.Name, "novo")
	be.Equal(t, mod.Version, common.PortugolVersion)
	be.Equal(t, prof.Name, "debug")
	be.Equal(t, prof.OutputFormat, FormatC)
	be.Equal(t, prof.OutputPath, filepath.Join(dir, "out", "novo.c"))

	_, prof, err = LoadModule(dir, "llvm")
	be.Err(t, err, nil)
	be.Equal(t, prof.OutputFormat, FormatLLVM)

	err = InitModule("novo", dir)
	be.True(t, err != nil)
}

func TestInitModuleRejectsBadName(t *testing.T) {
	err := InitModule("meu módulo", t.TempDir())
	be.True(t, err != nil)
}

func TestFindModuleRoot(t *testing.T) {
	dir := t.TempDir()
	writeModFile(t, dir, exampleModFile)

	nested := filepath.Join(dir, "a", "b")
	be.Err(t, os.MkdirAll(nested, 0o755), nil)

	root, ok := FindModuleRoot(nested)
	be.True(t, ok)

	want, _ := filepath.Abs(dir)
	be.Equal(t, root, want)
}

func TestFormatNames(t *testing.T) {
	format, ok := FormatByName("LLVM")
	be.True(t, ok)
	be.Equal(t, format, FormatLLVM)
	be.Equal(t, FormatName(FormatC), "c")

	_, ok = FormatByName("wasm")
	be.True(t, !ok)
}
