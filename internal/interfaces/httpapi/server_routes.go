package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/models", handler.ListModels)
	mux.HandleFunc("GET /v1/stats", handler.GetStats)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler, writeGuard Middleware) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.Handle("POST /v1/matches", writeGuard(http.HandlerFunc(handler.CreateMatch)))
}

func registerPredictionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/predictions", handler.ListPredictions)
	mux.HandleFunc("GET /v1/predictions/preview", handler.PreviewPrediction)
	mux.HandleFunc("POST /v1/predictions", handler.CreatePrediction)
	mux.HandleFunc("POST /v1/predictions/batch", handler.CreatePredictionBatch)
}
