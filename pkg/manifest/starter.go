package manifest

import (
	_ "embed"
)

var (
	//go:embed embedded/starter.yml
	starterYAML []byte

	//go:embed embedded/starter.toml
	starterTOML []byte
)

// Starter returns a commented example manifest in the given format
func Starter(format Format) []byte {
	src := starterYAML
	if format == FormatTOML {
		src = starterTOML
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
