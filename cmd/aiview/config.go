package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/assimp"
	"github.com/wippyai/assimp/errors"
)

// config holds settings that can come from the environment. Flags
// override them.
type config struct {
	postProcess assimp.PostProcess
	logLevel    zapcore.Level
	verbose     bool
}

// loadEnv reads a .env file from the working directory when one exists.
// A missing file is not an error.
func loadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// configFromEnv builds a config from lookup, normally os.LookupEnv.
func configFromEnv(lookup func(string) (string, bool)) (config, error) {
	cfg := config{
		postProcess: assimp.TargetRealtimeQuality,
		logLevel:    zapcore.WarnLevel,
	}

	if v, ok := lookup("AIVIEW_POSTPROCESS"); ok {
		p, err := assimp.ParsePostProcess(v)
		if err != nil {
			return cfg, err
		}
		cfg.postProcess = p
	}
	if v, ok := lookup("AIVIEW_LOG_LEVEL"); ok && v != "" {
		level, err := zapcore.ParseLevel(strings.ToLower(v))
		if err != nil {
			return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "AIVIEW_LOG_LEVEL")
		}
		cfg.logLevel = level
	}
	if v, ok := lookup("AIVIEW_VERBOSE"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "AIVIEW_VERBOSE")
		}
		cfg.verbose = on
	}
	return cfg, nil
}

// newLogger builds the CLI logger: console output to stderr at level.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
