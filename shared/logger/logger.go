package logger

import (
	"encore/config"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(consoleWriter())
	log.Trace().Msg("Zerolog initialized.")
}

// AttachFileSink tees the global logger into a rotating JSON file when LOG_FILE_PATH is set.
func AttachFileSink(config *config.Config) io.Closer {
	if config.Log.FilePath == "" {
		return nopCloser{}
	}

	sink := &lumberjack.Logger{
		Filename:   config.Log.FilePath,
		MaxSize:    config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAge:     config.Log.MaxAgeDays,
		Compress:   true,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter(), sink))
	log.Info().Str("path", config.Log.FilePath).Msg("File log sink attached.")

	return sink
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
