package logging

import (
	"testing"

	"mapgen/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNewHonoursLevel(t *testing.T) {
	cases := []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "bogus"}, zapcore.InfoLevel},
	}
	for _, c := range cases {
		log, err := New(c.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", c.cfg, err)
		}
		if !log.Core().Enabled(c.want) {
			t.Fatalf("%+v: level %v should be enabled", c.cfg, c.want)
		}
		if c.want > zapcore.DebugLevel && log.Core().Enabled(c.want-1) {
			t.Fatalf("%+v: level %v should be disabled", c.cfg, c.want-1)
		}
	}
}
