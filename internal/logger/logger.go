package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = build(zapcore.InfoLevel)

// Init sets the global log level. Everything goes to stderr so stdout
// stays clean for entry output.
func Init(levelStr string) {
	lvl := zapcore.InfoLevel
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	case "none":
		sugar = zap.NewNop().Sugar()
		return
	}
	sugar = build(lvl)
}

func build(lvl zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl)
	return zap.New(core).Sugar()
}

func Debug(msg string, args ...any) {
	sugar.Debugf(msg, args...)
}

func Info(msg string, args ...any) {
	sugar.Infof(msg, args...)
}

func Warn(msg string, args ...any) {
	sugar.Warnf(msg, args...)
}

func Error(msg string, args ...any) {
	sugar.Errorf(msg, args...)
}
