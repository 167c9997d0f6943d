package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a module as it is encoded in TOML
type tomlModule struct {
	Name          string         `toml:"name"`
	Entry         string         `toml:"entry"`
	Version       string         `toml:"portugol-version"`
	BuildProfiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it encoded in TOML
type tomlProfile struct {
	Name         string `toml:"name"`
	Format       string `toml:"format"`
	OutputPath   string `toml:"output"`
	StringSize   int    `toml:"string-size"`
	Indent       int    `toml:"indent"`
	WriteNewline bool   `toml:"write-newline"`
	DefaultProf  bool   `toml:"default"` // in absence of an explicit profile, choose this profile
}

// LoadModule loads and validates the module whose module file is in the
// directory `path` and selects its build profile.  `selectedProfile` can be
// empty if there is no profile selected: the default profile is used, or the
// first profile if none is marked default.
func LoadModule(path, selectedProfile string) (*PortugolModule, *BuildProfile, error) {
	buff, err := os.ReadFile(filepath.Join(path, common.ModuleFileName))
	if err != nil {
		return nil, nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, nil, err
	}

	if tmf.Module == nil {
		return nil, nil, fmt.Errorf("arquivo de módulo em %s não possui a tabela [module]", path)
	}

	mod := &PortugolModule{ModuleRoot: path}
	if err := validateModule(mod, tmf.Module); err != nil {
		return nil, nil, err
	}

	prof, err := selectProfile(tmf.Module, selectedProfile)
	if err != nil {
		return nil, nil, err
	}

	// Relative output paths are relative to the module root.
	if prof.OutputPath != "" && !filepath.IsAbs(prof.OutputPath) {
		prof.OutputPath = filepath.Join(path, prof.OutputPath)
	}

	return mod, prof, nil
}

// validateModule checks that the top level module contents are valid and
// copies them into `mod`.
func validateModule(mod *PortugolModule, tmod *tomlModule) error {
	if tmod.Name == "" {
		return fmt.Errorf("nome ausente no módulo em %s", mod.ModuleRoot)
	}

	if !IsValidIdentifier(tmod.Name) {
		return errors.New("o nome do módulo deve ser um identificador válido")
	}

	if tmod.Entry == "" {
		return fmt.Errorf("o módulo `%s` deve especificar o arquivo de entrada", tmod.Name)
	}

	if tmod.Version != common.PortugolVersion {
		report.ReportWarning(
			"versão do módulo `%s` (v%s) difere da versão do compilador (v%s)",
			tmod.Name, tmod.Version, common.PortugolVersion,
		)
	}

	mod.Name = tmod.Name
	mod.EntryPath = filepath.Join(mod.ModuleRoot, tmod.Entry)
	mod.Version = tmod.Version
	return nil
}

// selectProfile selects and converts the build profile of a module.
func selectProfile(tmod *tomlModule, selectedProfile string) (*BuildProfile, error) {
	if len(tmod.BuildProfiles) == 0 {
		return nil, fmt.Errorf("o módulo `%s` deve fornecer ao menos um perfil", tmod.Name)
	}

	if selectedProfile != "" {
		for _, prof := range tmod.BuildProfiles {
			if prof.Name == selectedProfile {
				return convertProfile(prof)
			}
		}

		return nil, fmt.Errorf("o módulo `%s` não possui o perfil `%s`", tmod.Name, selectedProfile)
	}

	for _, prof := range tmod.BuildProfiles {
		if prof.DefaultProf {
			return convertProfile(prof)
		}
	}

	return convertProfile(tmod.BuildProfiles[0])
}

// maxStringSize bounds the buffer size of a `cadeia`.
const maxStringSize = 1 << 16

// convertProfile converts a TOML build profile into a `*BuildProfile`
func convertProfile(tprof *tomlProfile) (*BuildProfile, error) {
	if tprof.Name == "" {
		return nil, errors.New("o perfil deve especificar um nome")
	}

	if tprof.Format == "" {
		return nil, fmt.Errorf("o perfil `%s` deve especificar um formato de saída", tprof.Name)
	}

	newProfile := DefaultProfile()
	newProfile.Name = tprof.Name
	newProfile.OutputPath = tprof.OutputPath
	newProfile.WriteNewline = tprof.WriteNewline

	if format, ok := FormatByName(tprof.Format); ok {
		newProfile.OutputFormat = format
	} else {
		return nil, fmt.Errorf("%s não é um formato de saída válido", tprof.Format)
	}

	switch {
	case tprof.StringSize < 0 || tprof.StringSize > maxStringSize:
		return nil, fmt.Errorf("tamanho de cadeia inválido no perfil `%s`: %d", tprof.Name, tprof.StringSize)
	case tprof.StringSize > 0:
		newProfile.StringSize = tprof.StringSize
	}

	switch {
	case tprof.Indent < 0:
		return nil, fmt.Errorf("indentação inválida no perfil `%s`: %d", tprof.Name, tprof.Indent)
	case tprof.Indent > 0:
		newProfile.Indent = tprof.Indent
	}

	return newProfile, nil
}

// DefaultProfile returns the profile used to build a single file outside of
// any module: C output to stdout.
func DefaultProfile() *BuildProfile {
	return &BuildProfile{
		Name:         "default",
		OutputFormat: FormatC,
		StringSize:   common.StringBufferSize,
		Indent:       2,
	}
}
