package imf

import (
	"context"
	"io"
	"time"

	"github.com/go-kit/log"

	"go-imf-rate-provider/domain"
)

// loggingService decorates an imf.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) OnNewData(r io.Reader) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "on_new_data",
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.OnNewData(r)
}

func (s *loggingService) GetRate(ctx context.Context, q domain.Query) (rate domain.Rate, ok bool) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "get_rate",
			"base", q.Base,
			"term", q.Term,
			"as_of", q.AsOf,
			"found", ok,
			"factor", rate.Factor,
			"chained", rate.Chained(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.GetRate(ctx, q)
}

func (s *loggingService) Currencies() []domain.Currency {
	return s.next.Currencies()
}

func (s *loggingService) Status() Status {
	return s.next.Status()
}
