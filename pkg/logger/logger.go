// Package logger envuelve zerolog con la configuración del proyecto:
// consola legible en development, JSON en los demás entornos, y subloggers
// por componente (store, http, auth) con el campo "component" fijo.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string // development -> consola legible; otro -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger logger estructurado del proyecto.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y redirige el logger global de zerolog,
// para que las librerías que lo usan emitan por la misma salida.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(s); err == nil && s != "" {
		return lvl
	}
	return zerolog.InfoLevel
}

// Component devuelve un sublogger con el campo component fijo.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog expone el logger interno para la API directa de zerolog.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
