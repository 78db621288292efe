// Package logging builds the diagnostic logger used by the benchmark.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger that writes human-readable debug entries to w when
// verbose is set and discards everything otherwise. Every entry carries a
// runID field so the lines of one run can be told apart.
func New(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).With(zap.String("runID", NewRunID()))
}

// NewRunID returns a fresh identifier for one benchmark run.
func NewRunID() string {
	return uuid.NewString()
}
