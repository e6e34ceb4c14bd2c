package manifest

// fileSchema mirrors the on-disk layout. Pointers distinguish absent keys
// from zero values so required fields can be reported by name.
type fileSchema struct {
	GitIgnore []string     `yaml:"gitignore" toml:"gitignore"`
	Svn       *groupSchema `yaml:"svn" toml:"svn"`
}

type groupSchema struct {
	Rev     *int          `yaml:"rev" toml:"rev"`
	URLBase *string       `yaml:"url_base" toml:"url_base"`
	Items   *[]itemSchema `yaml:"items" toml:"items"`
}

type itemSchema struct {
	URL       *string       `yaml:"url" toml:"url"`
	Rev       *int          `yaml:"rev" toml:"rev"`
	Path      *string       `yaml:"path" toml:"path"`
	GitIgnore *ignoreSchema `yaml:"gitignore" toml:"gitignore"`
}

type ignoreSchema struct {
	Exclude []string `yaml:"exclude" toml:"exclude"`
	Include []string `yaml:"include" toml:"include"`
}
