package config

import "github.com/urfave/cli/v3"

// Storage holds Cloud Storage configuration used for gs:// packages
type Storage struct {
	Project  string
	Endpoint string
}

// Flags returns CLI flags for Cloud Storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-project",
			Usage:       "Google Cloud project billed for Cloud Storage requests",
			Destination: &c.Project,
			Sources:     cli.EnvVars("SCORM_INSPECT_GCS_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Cloud Storage endpoint override, e.g. a local emulator",
			Destination: &c.Endpoint,
			Sources:     cli.EnvVars("SCORM_INSPECT_GCS_ENDPOINT"),
		},
	}
}
