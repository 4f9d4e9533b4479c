package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	L    *zap.Logger
	S    *zap.SugaredLogger
	sink *lumberjack.Logger
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
)

// Init points the global logger at the qvi log file, rotating it once it
// grows past maxLogSizeMB. The terminal belongs to the editor, so nothing is
// ever written to stderr.
func Init(debug bool) error {
	logPath, err := getLogPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}

	Close()
	sink = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	Use(newLogger(zapcore.AddSync(sink), level))

	S.Infow("logger initialized", "path", logPath, "debug", debug, "pid", os.Getpid())
	return nil
}

// Use installs l as the global logger. A nil l turns logging off.
func Use(l *zap.Logger) {
	if l == nil {
		L, S = nil, nil
		return
	}
	L = l.WithOptions(zap.AddCallerSkip(1))
	S = L.Sugar()
}

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.FunctionKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// DebugFromEnv reports whether QVI_DEBUG asks for debug logging.
func DebugFromEnv() bool {
	v := os.Getenv("QVI_DEBUG")
	return v != "" && v != "0" && v != "false"
}

// Close flushes the log and releases the file.
func Close() {
	if L != nil {
		_ = L.Sync()
	}
	if sink != nil {
		_ = sink.Close()
	}
	L, S, sink = nil, nil, nil
}

func getLogPath() (string, error) {
	if v := os.Getenv("QVI_LOG_FILE"); v != "" {
		return v, nil
	}
	if v := os.Getenv("QVI_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qvi.log"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qvi", "qvi.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qvi", "qvi.log"), nil
}

func Debug(msg string, keysAndValues ...interface{}) {
	if S != nil {
		S.Debugw(msg, keysAndValues...)
	}
}

func Info(msg string, keysAndValues ...interface{}) {
	if S != nil {
		S.Infow(msg, keysAndValues...)
	}
}

func Warn(msg string, keysAndValues ...interface{}) {
	if S != nil {
		S.Warnw(msg, keysAndValues...)
	}
}

// Error is for failures the editor recovers from, such as a buffer edit
// rejected as out of range or a failed save.
func Error(msg string, keysAndValues ...interface{}) {
	if S != nil {
		S.Errorw(msg, keysAndValues...)
	}
}
