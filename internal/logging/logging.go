package logging

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Data carries structured fields attached to a log entry.
type Data map[string]interface{}

type ctxKey struct{}

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Setup configures the package logger. Unknown levels fall back to info.
func Setup(service, version, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	base = Data{"service": service, "version": version}
}

var base = Data{}

// WithData returns a context whose log entries always carry data.
func WithData(ctx context.Context, data Data) context.Context {
	merged := Data{}
	for k, v := range fromContext(ctx) {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}
	return context.WithValue(ctx, ctxKey{}, merged)
}

func fromContext(ctx context.Context) Data {
	if ctx == nil {
		return nil
	}
	d, _ := ctx.Value(ctxKey{}).(Data)
	return d
}

func entry(ctx context.Context, data Data) *logrus.Entry {
	fields := logrus.Fields{}
	for k, v := range base {
		fields[k] = v
	}
	for k, v := range fromContext(ctx) {
		fields[k] = v
	}
	for k, v := range data {
		fields[k] = v
	}
	return logger.WithFields(fields)
}

func Debug(ctx context.Context, data Data, msg string) {
	entry(ctx, data).Debug(msg)
}

func Info(ctx context.Context, data Data, msg string) {
	entry(ctx, data).Info(msg)
}

func Warn(ctx context.Context, err error, data Data, msg string) {
	entry(ctx, data).WithError(err).Warn(msg)
}

func Error(ctx context.Context, err error, data Data, msg string) {
	entry(ctx, data).WithError(err).Error(msg)
}

// FatalNoCtx logs and exits; meant for startup failures only.
func FatalNoCtx(err error, data Data, msg string) {
	entry(context.Background(), data).WithError(err).Fatal(msg)
}
