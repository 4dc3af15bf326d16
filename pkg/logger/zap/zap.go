package zap

import (
	"github.com/lintang-b-s/rdp-simplifier/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to stderr, so stdout stays free for command output.
func New(cfg config.Configuration) (*zap.Logger, error) {
	return Config(cfg).Build()
}

func Config(cfg config.Configuration) zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.Level(cfg.Level)),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			CallerKey:      "caller",
			NameKey:        "name",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.TimeEncoderOfLayout(cfg.TimeFormat),
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}
}
