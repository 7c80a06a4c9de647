// Package logger arma el zerolog de la aplicación: consola legible en
// desarrollo, JSON en producción.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla el formato de salida y el nivel mínimo.
type Config struct {
	Env   string // development escribe a consola legible, cualquier otro valor JSON
	Level string // trace, debug, info, warn, error; inválido o vacío cae en info
}

// Logger envuelve zerolog para inyectarlo por constructor en vez de usar el
// logger global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración y lo deja también como
// logger global de zerolog, para las librerías que escriben ahí.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Trace, Debug, Info, Warn, Error y Fatal delegan al zerolog interno.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para los componentes que reciben
// zerolog.Logger directamente.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
