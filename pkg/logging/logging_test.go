package logging_test

import (
	"strings"
	"testing"

	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"v_info", 1, zerolog.InfoLevel},
		{"vv_debug", 2, zerolog.DebugLevel},
		{"vvv_trace", 3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logging.SetupLogger(0)
	logger := logging.GetLogger("snapshot")
	// Component loggers must be usable without further setup.
	logger.Debug().Msg("probe")
}

func TestLogFilePath(t *testing.T) {
	path := logging.LogFilePath()
	assert.True(t, strings.HasSuffix(path, "tunectl/tunectl.log"))
}
