package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkwell/shared"
)

// metricsHandlerGroup exposes the Prometheus scrape endpoint. It sits on
// the root prefix, gated by a bearer secret so the endpoint can face the
// public interface without leaking instance internals.
type metricsHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	scraper http.Handler
}

func NewMetricsHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
) IHandlerGroup {
	return &metricsHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		scraper: promhttp.Handler(),
	}
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/metrics", func(w http.ResponseWriter, r *http.Request) { hg.getMetrics(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := bearerSecret(r)
			expected := hg.cfg.Secrets.MetricsAuth
			if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
				hg.logger.Warnf("Rejected metrics scrape from %s: bad bearer secret", r.RemoteAddr)
				writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerSecret extracts the token from an "Authorization: Bearer ..." header,
// or returns the empty string when the header is absent or of a different scheme.
func bearerSecret(r *http.Request) string {
	header := r.Header.Get(metricsAuthHeader)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (hg *metricsHandlerGroup) getMetrics(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Serving metrics scrape: %s", r.URL.Path)
	hg.scraper.ServeHTTP(w, r)
}
