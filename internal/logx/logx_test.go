package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	Setup(&buf, false)
	log.Debug().Msg("hidden-line")
	log.Info().Int("nodes", 12).Msg("shown-line")

	out := buf.String()
	if strings.Contains(out, "hidden-line") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown-line") || !strings.Contains(out, "nodes=") {
		t.Errorf("info line missing: %q", out)
	}

	buf.Reset()
	Setup(&buf, true)
	log.Debug().Msg("debug-line")
	if !strings.Contains(buf.String(), "debug-line") {
		t.Errorf("verbose logger dropped debug line: %q", buf.String())
	}
}
