package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger that writes JSON lines to the given file. Nothing is
// ever written to the terminal: the TUI owns stdout and stderr.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel)
	return zap.New(core), nil
}

// Nop returns a logger that discards everything, for tests and for callers
// that run before the config is available.
func Nop() *zap.Logger {
	return zap.NewNop()
}
