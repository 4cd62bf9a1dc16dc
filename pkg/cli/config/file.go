package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

type fileConfig struct {
	Inspect struct {
		ScratchDir       string   `toml:"scratch_dir"`
		LaunchExtensions []string `toml:"launch_extensions"`
		ManifestName     string   `toml:"manifest_name"`
		KeepScratch      bool     `toml:"keep_scratch"`
	} `toml:"inspect"`

	Storage struct {
		Project  string `toml:"project"`
		Endpoint string `toml:"endpoint"`
	} `toml:"storage"`
}

// LoadFile reads a TOML configuration file and fills in every setting that
// was not given on the command line. An empty path is a no-op.
func LoadFile(path string, inspect *Inspect, storage *Storage) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer f.Close()

	var cfg fileConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	if inspect != nil {
		if inspect.ScratchDir == "" {
			inspect.ScratchDir = cfg.Inspect.ScratchDir
		}
		if len(inspect.LaunchExtensions) == 0 {
			inspect.LaunchExtensions = cfg.Inspect.LaunchExtensions
		}
		if inspect.ManifestName == "" {
			inspect.ManifestName = cfg.Inspect.ManifestName
		}
		inspect.KeepScratch = inspect.KeepScratch || cfg.Inspect.KeepScratch
	}

	if storage != nil {
		if storage.Project == "" {
			storage.Project = cfg.Storage.Project
		}
		if storage.Endpoint == "" {
			storage.Endpoint = cfg.Storage.Endpoint
		}
	}

	return nil
}
