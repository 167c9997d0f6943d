package common

const (
	SrcFileExtension = ".por"
	ModuleFileName   = "portugol-mod.toml"
	PortugolVersion  = "0.1.0"
)

// StringBufferSize is the default capacity, in bytes, of the buffers backing
// `cadeia` variables and parameters in generated code.
const StringBufferSize = 100
