package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr          string
	MaxUploadSize int64
	SaveDir       string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("ZIPSCOPE_ADDR"),
		},
		&cli.Int64Flag{
			Name:        "max-upload-size",
			Usage:       "Maximum size of an uploaded archive in bytes",
			Value:       64 << 20,
			Destination: &c.MaxUploadSize,
			Sources:     cli.EnvVars("ZIPSCOPE_MAX_UPLOAD_SIZE"),
		},
		&cli.StringFlag{
			Name:        "save-dir",
			Usage:       "Also save each analysis result as JSON into this directory",
			Destination: &c.SaveDir,
			Sources:     cli.EnvVars("ZIPSCOPE_SAVE_DIR"),
		},
	}
}
