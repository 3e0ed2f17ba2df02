package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// TrackVisitors records a visit event for every request passing
// through it. Tracking is best-effort telemetry: failures are logged
// and swallowed so the primary response is never blocked.
func TrackVisitors(visitors service.VisitorService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit := model.VisitorHit{
				IPAddress: clientIP(r, 1),
				UserAgent: r.UserAgent(),
				Referrer:  r.Referer(),
				Page:      r.URL.Path,
			}
			if err := visitors.Track(r.Context(), hit); err != nil {
				slog.Warn("visitor tracking failed", "ip", hit.IPAddress, "page", hit.Page, "error", err)
			}
			next.ServeHTTP(w, r)
		})
	}
}
