// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
//
// Example:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client, _ := tl1.NewClient(transport, "flex.mi01",
//	    tl1.WithLogger(tl1.NewZerologLogger(zl)))
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger wrapping the given logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a debug message with structured key-value pairs
func (z *ZerologLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	z.emit(z.logger.Debug().Ctx(ctx), msg, keysAndValues)
}

// Info logs an informational message with structured key-value pairs
func (z *ZerologLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	z.emit(z.logger.Info().Ctx(ctx), msg, keysAndValues)
}

// Warn logs a warning message with structured key-value pairs
func (z *ZerologLogger) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	z.emit(z.logger.Warn().Ctx(ctx), msg, keysAndValues)
}

// Error logs an error message with structured key-value pairs
func (z *ZerologLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	z.emit(z.logger.Error().Ctx(ctx), msg, keysAndValues)
}

func (z *ZerologLogger) emit(event *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		event = event.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	event.Msg(msg)
}
