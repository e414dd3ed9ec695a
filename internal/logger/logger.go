package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jarana/guia/internal/config"
)

var level = zap.NewAtomicLevel()

// Init replaces the global zap logger. Production uses JSON output, every
// other environment the console encoder. When conf.File is set, entries are
// also written to a rotating file.
func Init(environment string, conf *config.LogConfig) error {
	if conf == nil {
		conf = &config.LogConfig{Level: "info"}
	}
	if err := SetLevel(conf.Level); err != nil {
		return err
	}

	var encoderConf zapcore.EncoderConfig
	var encoder zapcore.Encoder
	if environment == "production" {
		encoderConf = zap.NewProductionEncoderConfig()
		encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConf)
	} else {
		encoderConf = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConf)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if conf.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   true,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(l)

	config.WatchLogLevel(func(lvl string) {
		if err := SetLevel(lvl); err != nil {
			zap.L().Warn("ignoring invalid log level", zap.String("level", lvl), zap.Error(err))
		}
	})

	return nil
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(lvl string) error {
	if lvl == "" {
		lvl = "info"
	}

	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}
	level.SetLevel(parsed)

	return nil
}
