package feed

import (
	"context"
	"io"
	"time"

	"github.com/go-kit/log"
)

// loggingSource decorates a feed.Source with logging
type loggingSource struct {
	next   Source
	logger log.Logger
}

// NewLoggingSource return a new logging Source
func NewLoggingSource(logger log.Logger, s Source) Source {
	return &loggingSource{
		next:   s,
		logger: logger,
	}
}

func (s *loggingSource) Open(ctx context.Context) (rc io.ReadCloser, version Version, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "open",
			"mod_time", version.ModTime,
			"size", version.Size,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Open(ctx)
}
