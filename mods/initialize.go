package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/pelletier/go-toml"
)

// InitModule creates a new module with the given name at the given path.  The
// module compiles `main.por` and has a `debug` profile producing C (the
// default) and an `llvm` profile producing LLVM IR.
func InitModule(name, path string) error {
	modFilePath := filepath.Join(path, common.ModuleFileName)

	// check to see if a module already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("o arquivo de módulo já existe")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("erro no arquivo de módulo: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return errors.New("o nome do módulo deve ser um identificador válido")
	}

	mod := &tomlModule{
		Name:    name,
		Entry:   "main" + common.SrcFileExtension,
		Version: common.PortugolVersion,
		BuildProfiles: []*tomlProfile{
			newInitProfile(name, FormatC),
			newInitProfile(name, FormatLLVM),
		},
	}

	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("erro ao criar o arquivo de módulo: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlModuleFile{Module: mod}); err != nil {
		return fmt.Errorf("erro ao codificar TOML: %s", err.Error())
	}

	return nil
}

// newInitProfile creates a new initial profile for a module
func newInitProfile(modName string, format int) *tomlProfile {
	prof := &tomlProfile{
		Format:      FormatName(format),
		StringSize:  common.StringBufferSize,
		Indent:      2,
		DefaultProf: format == FormatC, // the C profile is the default
	}

	if format == FormatC {
		prof.Name = "debug"
		prof.OutputPath = filepath.Join("out", modName+".c")
	} else {
		prof.Name = "llvm"
		prof.OutputPath = filepath.Join("out", modName+".ll")
	}

	return prof
}
