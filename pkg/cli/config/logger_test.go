package config_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipscope/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: WARN",
			level:   "WARN",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Invalid level: invalid",
			level:   "invalid",
			wantErr: true,
		},
		{
			name:    "Invalid level: empty string",
			level:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &config.Logger{
				Level:  tt.level,
				Output: &buf,
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				gt.V(t, result).Nil()
				return
			}

			gt.NoError(t, err)
			gt.V(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Info("test log message", "file", "main.go")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Equal(t, record["msg"], any("test log message"))
	gt.Equal(t, record["file"], any("main.go"))
}

func TestLogger_Configure_LevelBehavior(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "warn",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Debug("debug message")
	result.Info("info message")
	gt.Equal(t, buf.Len(), 0)

	result.Warn("warn message")
	gt.String(t, buf.String()).Contains("warn message")
}

func TestLogger_Configure_RedactsSecrets(t *testing.T) {
	type credential struct {
		Token string
	}

	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Info("github", "credential", credential{Token: "ghp_verysecret"})
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("ghp_verysecret")))
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	gt.Equal(t, len(flags), 2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	gt.True(t, flagNames["log-level"])
	gt.True(t, flagNames["log-json"])
}
