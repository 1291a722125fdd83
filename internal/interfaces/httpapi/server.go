package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	// AdminToken guards POST /v1/matches; empty leaves it open.
	AdminToken string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCatalogRoutes(mux, handler, RequireWriteToken(opts.AdminToken))
	registerPredictionRoutes(mux, handler)

	return chain(mux,
		RequestTracing(),
		RequestLogging(logger),
		CORS(opts.CORSAllowedOrigins),
		RecoverPanic(logger),
	)
}
