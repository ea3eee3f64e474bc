package auth

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAllowed   = "allowed"
	resultMissing   = "missing_token"
	resultInvalid   = "invalid_token"
	resultForbidden = "forbidden"
)

var guardDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "news_auth_guard_decisions_total",
		Help: "Bearer-token guard decisions on mutating news routes",
	},
	[]string{"result"},
)

func recordGuard(result string) {
	guardDecisions.WithLabelValues(result).Inc()
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return resultMissing
	case errors.Is(err, ErrForbidden):
		return resultForbidden
	default:
		return resultInvalid
	}
}
