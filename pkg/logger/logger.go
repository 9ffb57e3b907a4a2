// Package logger arma el logger zerolog del servicio: consola legible en
// desarrollo, JSON en cualquier otro entorno. Los componentes que reciben el
// logger por valor (seed, chequeador de alertas) usan el accesor Zerolog.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // "development" activa la salida de consola
	Level string // trace, debug, info, warn, error; desconocido cae en info
}

// Logger envuelve zerolog para inyectarlo como dependencia.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno y redirige el logger global de
// zerolog, para que las librerías que lo usan escriban por la misma salida.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

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

// Zerolog expone el logger interno para las APIs que lo piden por valor.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
