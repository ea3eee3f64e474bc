package article

import (
	"log/slog"
	"net/http"

	"news-portal/internal/common/pagination"
	artUC "news-portal/internal/usecase/article"
)

// Prefixes are the mount points of the news routes.
var Prefixes = []string{"/news", "/api/news"}

// Options configures the news routes.
type Options struct {
	Pagination     pagination.Config
	MaxUploadBytes int64
	Logger         *slog.Logger
	// Protect wraps the mutating routes. Nil leaves them open.
	Protect func(http.Handler) http.Handler
}

// Register mounts the news handlers under every prefix in Prefixes.
func Register(mux *http.ServeMux, svc *artUC.Service, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	protect := opts.Protect
	if protect == nil {
		protect = func(h http.Handler) http.Handler { return h }
	}

	for _, p := range Prefixes {
		mux.Handle("POST "+p+"/add-news", protect(CreateHandler{
			Svc:            svc,
			MaxUploadBytes: opts.MaxUploadBytes,
			Logger:         logger,
		}))
		mux.Handle("GET "+p+"/get-all-news", ListHandler{
			Svc:        svc,
			Pagination: opts.Pagination,
			Logger:     logger,
		})
		mux.Handle("GET "+p+"/get-news-byId", GetHandler{Svc: svc, Logger: logger})
		mux.Handle("GET "+p+"/get-slider-news", SliderHandler{Svc: svc, Logger: logger})
		mux.Handle("GET "+p+"/get-news-category", CategoryHandler{Svc: svc, Logger: logger})
		mux.Handle("PUT "+p+"/update-news", protect(UpdateHandler{Svc: svc, Logger: logger}))
		mux.Handle("DELETE "+p+"/delete-news", protect(DeleteHandler{Svc: svc, Logger: logger}))
	}
}
