// Package logger sets up the file logger. The terminal belongs to the game,
// so log output goes to a rotated file instead of stderr.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared logger. It discards everything until Init is called.
var Log = zap.NewNop().Sugar()

// Init points Log at filePath with size based rotation.
// An empty path keeps the no-op logger.
func Init(filePath string, debug bool) error {
	if filePath == "" {
		Log = zap.NewNop().Sugar()
		return nil
	}
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	Log = New(zapcore.AddSync(lj), debug)
	return nil
}

// New builds a console-encoded logger writing to ws.
func New(ws zapcore.WriteSyncer, debug bool) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	return zap.New(core, zap.AddCaller()).Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
