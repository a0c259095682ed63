package reportconfig

import (
	"github.com/jinzhu/configor"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes the environment variables read into Settings,
// e.g. OPENCOVER_SOURCES or OPENCOVER_VERBOSITY.
const EnvPrefix = "OPENCOVER"

// Settings holds the raw configuration values from a config file, the
// environment and the command line, before validation.
type Settings struct {
	Input                 string   `json:"input" yaml:"input" toml:"input"`
	Output                string   `json:"output" yaml:"output" toml:"output"`
	Sources               string   `json:"sources" yaml:"sources" toml:"sources"`
	IncludeGettersSetters bool     `json:"includeGettersSetters" yaml:"includeGettersSetters" toml:"includeGettersSetters"`
	Verbosity             string   `json:"verbosity" yaml:"verbosity" toml:"verbosity" default:"Info"`
	ModuleFilters         []string `json:"moduleFilters" yaml:"moduleFilters" toml:"moduleFilters"`
	ClassFilters          []string `json:"classFilters" yaml:"classFilters" toml:"classFilters"`
	HideSummary           bool     `json:"hideSummary" yaml:"hideSummary" toml:"hideSummary"`
}

// LoadSettings reads the optional config file (YAML, JSON or TOML, chosen by
// extension) and then the OPENCOVER_ environment variables, which win over
// the file.
func LoadSettings(configFile string) (*Settings, error) {
	var files []string
	if configFile != "" {
		files = append(files, configFile)
	}

	s := &Settings{}
	if err := configor.New(&configor.Config{ENVPrefix: EnvPrefix}).Load(s, files...); err != nil {
		return nil, errors.Wrapf(err, "failed to load configuration %s", configFile)
	}
	return s, nil
}
