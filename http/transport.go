package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"go-imf-rate-provider/domain"
	"go-imf-rate-provider/exchange"
	"go-imf-rate-provider/imf"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Rates    imf.Service
	Exchange exchange.Service
	router   *gin.Engine
}

// NewServer builds the routes. gatherer backs /metrics.
func NewServer(rates imf.Service, ex exchange.Service, gatherer prometheus.Gatherer, logger log.Logger) *Server {
	server := &Server{
		Rates:    rates,
		Exchange: ex,
		router:   gin.New(),
	}
	server.router.Use(requestLogger(logger), gin.Recovery())
	server.routes(gatherer)
	return server
}

func (s *Server) routes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	api.GET("/rates/:base/:term", s.rate)
	api.POST("/convert", s.convert)
	api.GET("/currencies", s.currencies)

	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// rateResponse a rate as returned to clients. Chained rates carry their legs.
type rateResponse struct {
	Base    domain.Currency `json:"base"`
	Term    domain.Currency `json:"term"`
	Factor  decimal.Decimal `json:"factor"`
	Kind    domain.RateKind `json:"kind"`
	ValidOn *civil.Date     `json:"validOn,omitempty"`
	Legs    []rateResponse  `json:"legs,omitempty"`
}

func newRateResponse(r domain.Rate) rateResponse {
	resp := rateResponse{
		Base:   r.Base,
		Term:   r.Term,
		Factor: r.Factor,
		Kind:   r.Kind,
	}
	if r.Dated() {
		validOn := r.ValidOn
		resp.ValidOn = &validOn
	}
	for _, leg := range r.Chain {
		resp.Legs = append(resp.Legs, newRateResponse(leg))
	}
	return resp
}

// rate looks up the rate for a currency pair, optionally at ?date=
func (s *Server) rate(c *gin.Context) {
	base, err := domain.ParseCurrency(c.Param("base"))
	if err != nil {
		s.fail(c, err)
		return
	}
	term, err := domain.ParseCurrency(c.Param("term"))
	if err != nil {
		s.fail(c, err)
		return
	}
	asOf, err := parseDate(c.Query("date"))
	if err != nil {
		s.fail(c, err)
		return
	}

	rate, ok := s.Rates.GetRate(c.Request.Context(), domain.Query{Base: base, Term: term, AsOf: asOf})
	if !ok {
		s.fail(c, domain.ErrNoRate)
		return
	}
	c.JSON(http.StatusOK, newRateResponse(rate))
}

// convert converts an amount between two currencies
func (s *Server) convert(c *gin.Context) {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency string          `json:"fromCurrency" binding:"required"`
		ToCurrency   string          `json:"toCurrency" binding:"required"`
		Amount       decimal.Decimal `json:"amount"`
		Date         string          `json:"date"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange decimal.Decimal `json:"exchange"`
		Amount   decimal.Decimal `json:"amount"`
		Original decimal.Decimal `json:"original"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	from, err := domain.ParseCurrency(req.FromCurrency)
	if err != nil {
		s.fail(c, err)
		return
	}
	to, err := domain.ParseCurrency(req.ToCurrency)
	if err != nil {
		s.fail(c, err)
		return
	}
	asOf, err := parseDate(req.Date)
	if err != nil {
		s.fail(c, err)
		return
	}

	result, err := s.Exchange.Convert(c.Request.Context(), req.Amount, from, to, asOf)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response{
		Exchange: result.Rate.Factor,
		Amount:   result.Amount,
		Original: req.Amount,
	})
}

func (s *Server) currencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": s.Rates.Currencies()})
}

// health reports 503 until the first feed has been loaded
func (s *Server) health(c *gin.Context) {
	status := s.Rates.Status()
	if !status.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"loadedAt": status.LoadedAt,
		"stats":    status.Stats,
	})
}

// fail maps domain errors to HTTP statuses
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoRate):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoRate.Error()})
	default:
		level.Error(loggerFrom(c)).Log("msg", "request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDate accepts an empty string (today), a calendar date or an RFC 3339 datetime
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := civil.ParseDate(s); err == nil {
		return d.In(time.UTC), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date [%v]", domain.ErrValidation, s)
	}
	return t, nil
}
