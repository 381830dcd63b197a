package logging

import (
	"context"
	"io"
	"os"
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ApplicationName = "grailpay-cli"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

// the value actually doesn't matter, the type alone will guarantee no package gets at this context value
const LoggerKey key = 0

// RequestIdKey is the context key under which the request id of the current command or
// incoming webhook call is stored.
const RequestIdKey key = 1

var output io.Writer = os.Stderr

// Setup applies the configured severity and routes the go-autumn libraries through zerolog as well.
//
// Log output goes to stderr so it never mixes with the results printed on stdout.
func Setup(severity string) {
	auzerolog.SetupPlaintextLogging()
	// the plaintext setup writes to stdout, where the command results go
	log.Logger = log.Logger.Output(zerolog.ConsoleWriter{Out: output, NoColor: true, TimeFormat: "15:04:05.000"})
	zerolog.SetGlobalLevel(ParseLevel(severity))
	aulogging.Logger.NoCtx().Debug().Printf("log level set to %s", strings.ToUpper(severity))
}

// ParseLevel maps a configured severity to a zerolog level, defaulting to info.
func ParseLevel(severity string) zerolog.Level {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func CreateContextWithLoggerForRequestId(ctx context.Context, requestId string) context.Context {
	ctx = context.WithValue(ctx, RequestIdKey, requestId)
	return context.WithValue(ctx, LoggerKey, newLogger(requestId))
}

// NewRequestId returns a random 8 character hex id, or the fallback id if no randomness is available.
func NewRequestId() string {
	reqUuid, err := uuid.NewRandom()
	if err != nil {
		return "ffffffff"
	}
	return reqUuid.String()[:8]
}

func RequestIdFromContext(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIdKey).(string); ok {
		return reqID
	}
	return "ffffffff"
}

func LoggerFromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(LoggerKey).(Logger)
	if !ok {
		return NewLogger()
	}

	return logger
}

// you should only use this when your code really does not belong to a command or a webhook call.
func NoCtx() Logger {
	return NewLogger()
}

func NewLogger() Logger {
	return newLogger("")
}

func newLogger(requestId string) Logger {
	ctx := zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}).
		With().
		Str("App", ApplicationName).
		Timestamp()
	if requestId != "" {
		ctx = ctx.Str("RequestId", requestId)
	}
	logger := ctx.Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
