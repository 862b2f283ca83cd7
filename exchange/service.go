package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"go-imf-rate-provider/domain"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount decimal.Decimal, from domain.Currency, to domain.Currency, asOf time.Time) (domain.Exchanged, error)
}

// RateProvider looks up rates. Implementations must be concurrency-safe.
type RateProvider interface {
	GetRate(ctx context.Context, q domain.Query) (domain.Rate, bool)
}

// service converts amounts with rates from a RateProvider
type service struct {
	rates RateProvider
}

// NewService constructs a valid Service
func NewService(rates RateProvider) Service {
	return &service{
		rates: rates,
	}
}

// Convert computes a conversion from one currency to another with the rate valid at asOf.
// A zero asOf means today.
func (s *service) Convert(ctx context.Context, amount decimal.Decimal, from domain.Currency, to domain.Currency, asOf time.Time) (domain.Exchanged, error) {
	if amount.IsNegative() {
		return domain.Exchanged{}, fmt.Errorf("%w: negative amount %v", domain.ErrValidation, amount)
	}

	rate, ok := s.rates.GetRate(ctx, domain.Query{Base: from, Term: to, AsOf: asOf})
	if !ok {
		return domain.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, domain.ErrNoRate)
	}

	result := domain.Exchanged{
		Rate:   rate,
		Amount: amount.Mul(rate.Factor),
	}

	return result, nil
}
