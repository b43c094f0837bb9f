package log

import (
	"time"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to the Logger interface.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog wraps an existing zerolog logger.
func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

func (z *Zerolog) Debug(msg string, fields ...Field) { z.emit(z.logger.Debug(), msg, fields) }

func (z *Zerolog) Info(msg string, fields ...Field) { z.emit(z.logger.Info(), msg, fields) }

func (z *Zerolog) Warn(msg string, fields ...Field) { z.emit(z.logger.Warn(), msg, fields) }

func (z *Zerolog) Error(msg string, fields ...Field) { z.emit(z.logger.Error(), msg, fields) }

func (z *Zerolog) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}
