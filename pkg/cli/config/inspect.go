package config

import "github.com/urfave/cli/v3"

// Inspect holds package inspection configuration
type Inspect struct {
	ConfigFile       string
	ScratchDir       string
	LaunchExtensions []string
	ManifestName     string
	KeepScratch      bool
	NoColor          bool
}

// Flags returns CLI flags for inspection configuration
func (c *Inspect) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML configuration file",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("SCORM_INSPECT_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "scratch-dir",
			Usage:       "Directory in which the scratch extraction directory is created (default: next to the executable)",
			Destination: &c.ScratchDir,
			Sources:     cli.EnvVars("SCORM_INSPECT_SCRATCH_DIR"),
		},
		&cli.StringSliceFlag{
			Name:        "launch-ext",
			Usage:       "File extension treated as a launch file, repeatable (default: .html)",
			Destination: &c.LaunchExtensions,
			Sources:     cli.EnvVars("SCORM_INSPECT_LAUNCH_EXT"),
		},
		&cli.StringFlag{
			Name:        "manifest-name",
			Usage:       "Manifest file name, matched case-insensitively (default: imsmanifest.xml)",
			Destination: &c.ManifestName,
			Sources:     cli.EnvVars("SCORM_INSPECT_MANIFEST_NAME"),
		},
		&cli.BoolFlag{
			Name:        "keep-scratch",
			Usage:       "Leave the scratch directory on disk for debugging",
			Destination: &c.KeepScratch,
			Sources:     cli.EnvVars("SCORM_INSPECT_KEEP_SCRATCH"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("SCORM_INSPECT_NO_COLOR", "NO_COLOR"),
		},
	}
}
