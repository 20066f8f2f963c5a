package log

import (
	"time"

	"github.com/rs/zerolog"
)

var _ Logger = (*ZerologAdapter)(nil)

// ZerologAdapter writes Logger calls to a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerolog wraps zl. Output format and level are whatever zl is configured with.
func NewZerolog(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) { emit(z.zl.Debug(), msg, fields) }
func (z *ZerologAdapter) Info(msg string, fields ...Field)  { emit(z.zl.Info(), msg, fields) }
func (z *ZerologAdapter) Warn(msg string, fields ...Field)  { emit(z.zl.Warn(), msg, fields) }
func (z *ZerologAdapter) Error(msg string, fields ...Field) { emit(z.zl.Error(), msg, fields) }

// emit is a no-op when the level is disabled (zerolog returns a nil event).
func emit(e *zerolog.Event, msg string, fields []Field) {
	if e == nil {
		return
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case []string:
			e = e.Strs(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	e.Msg(msg)
}
