package solver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// loggingProvider records one structured log line per solve call.
type loggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps a Provider so every call is logged with latency and
// token usage.
func WithLogging(p Provider, logger *log.Logger) Provider {
	return &loggingProvider{inner: p, logger: logger}
}

func (l *loggingProvider) Solve(ctx context.Context, prob Problem) (*Result, error) {
	start := time.Now()
	res, err := l.inner.Solve(ctx, prob)
	elapsed := time.Since(start)

	if err != nil {
		l.logger.Warn("solve failed",
			"model", l.inner.ModelID(),
			"latency", elapsed.Round(time.Millisecond),
			"err", err)
		return nil, err
	}

	l.logger.Debug("solve ok",
		"model", res.Model,
		"latency", elapsed.Round(time.Millisecond),
		"input_tokens", res.Usage.InputTokens,
		"output_tokens", res.Usage.OutputTokens)
	return res, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
