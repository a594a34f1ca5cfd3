// Package logging builds the zap loggers shared by the engine and carries
// them through contexts.
package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// Options select the encoder and the level of the root logger
type Options struct {
	Dev   bool
	Level string
	// Extra cores receive every entry the root logger accepts
	Extra []zapcore.Core
}

// New builds a logger: a console encoder in dev mode, JSON otherwise.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	filter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	var encoder zapcore.Encoder
	if opts.Dev {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), filter)}
	cores = append(cores, opts.Extra...)

	logger := zap.New(zapcore.NewTee(cores...))
	if opts.Dev {
		logger = logger.WithOptions(zap.Development(), zap.AddCaller())
	}
	return logger, nil
}

// Init builds the root logger returned by From when a context carries none
func Init(opts Options) (*zap.Logger, error) {
	logger, err := New(opts)
	if err != nil {
		return nil, err
	}
	rootLogger = logger
	rootLogger.Info("Logging initialized", zap.Bool("devmode", opts.Dev), zap.String("level", opts.Level))
	return rootLogger, nil
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok {
		return rootLogger
	}
	return l
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}
