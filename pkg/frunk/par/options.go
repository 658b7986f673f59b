package par

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	ChunkOptionKey  OptionKey = "chunk_options"
	LoggerOptionKey OptionKey = "logger"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ChunkOptions struct {
	Size int
}

// WithWorkers limits how many goroutines CombineAll and Traverse use.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// WithChunkSize sets how many values a CombineAll worker folds at once.
func WithChunkSize(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, ChunkOptionKey, ChunkOptions{Size: size})
}

// WithLogger attaches the logger used for debug records.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// Workers returns the configured worker limit, or defaultMaxWorkers when none
// is set or the setting is not positive.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func ChunkSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(ChunkOptionKey).(ChunkOptions)
	if ok && options.Size > 0 {
		return options.Size
	}
	return defaultSize
}

// Logger returns the logger from the context, or slog.Default.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
