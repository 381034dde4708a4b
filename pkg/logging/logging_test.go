package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hilite/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default_warn_level", 0, zerolog.WarnLevel},
		{"info_level", 1, zerolog.InfoLevel},
		{"debug_level", 2, zerolog.DebugLevel},
		{"trace_level", 3, zerolog.TraceLevel},
		{"high_verbosity_defaults_to_trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(tempDir, "hilite", "hilite.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Level(-1))
	assert.Equal(t, zerolog.InfoLevel, Level(1))
	assert.Equal(t, zerolog.TraceLevel, Level(9))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("scanner")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"scanner"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("hilite", []string{"Foo.java", "--force"})

	out := buf.String()
	assert.Contains(t, out, "hilite")
	assert.Contains(t, out, "Foo.java")
	assert.Contains(t, out, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "highlight")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}
