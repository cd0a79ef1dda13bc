package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_AplicaElNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, l.Zerolog().GetLevel())
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel}, // desconocido cae en info
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.in), tc.in)
	}
}
