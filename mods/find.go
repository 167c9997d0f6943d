package mods

import (
	"os"
	"path/filepath"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/common"
	"github.com/pelletier/go-toml"
)

// FindModuleRoot searches `dir` and its parents for a directory containing a
// module file and returns the first one found.
func FindModuleRoot(dir string) (string, bool) {
	abspath, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		if checkPath(abspath) {
			return abspath, true
		}

		parent := filepath.Dir(abspath)
		if parent == abspath {
			return "", false
		}

		abspath = parent
	}
}

// checkPath checks to see if a potential module path is valid -- accepts the
// path to the module root not the path to the module file
func checkPath(abspath string) bool {
	mfPath := filepath.Join(abspath, common.ModuleFileName)

	finfo, err := os.Stat(mfPath)
	if err != nil || finfo.IsDir() {
		return false
	}

	// Only the name is checked here: the full validation happens when the
	// module is loaded.
	tree, err := toml.LoadFile(mfPath)
	if err != nil {
		return false
	}

	name, ok := tree.Get("module.name").(string)
	return ok && name != ""
}
