package main

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/assimp"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  nil,
			want: config{postProcess: assimp.TargetRealtimeQuality, logLevel: zapcore.WarnLevel},
		},
		{
			name: "all set",
			env: map[string]string{
				"AIVIEW_POSTPROCESS": "Triangulate|FlipUVs",
				"AIVIEW_LOG_LEVEL":   "DEBUG",
				"AIVIEW_VERBOSE":     "true",
			},
			want: config{postProcess: assimp.Triangulate | assimp.FlipUVs, logLevel: zapcore.DebugLevel, verbose: true},
		},
		{
			name: "empty post-process disables it",
			env:  map[string]string{"AIVIEW_POSTPROCESS": ""},
			want: config{postProcess: 0, logLevel: zapcore.WarnLevel},
		},
		{name: "bad step", env: map[string]string{"AIVIEW_POSTPROCESS": "Sparkle"}, wantErr: true},
		{name: "bad level", env: map[string]string{"AIVIEW_LOG_LEVEL": "loud"}, wantErr: true},
		{name: "bad bool", env: map[string]string{"AIVIEW_VERBOSE": "maybe"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := configFromEnv(lookupMap(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("config = %+v, want %+v", got, tt.want)
			}
		})
	}
}
