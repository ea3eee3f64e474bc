package article

import (
	"log/slog"
	"net/http"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	artUC "news-portal/internal/usecase/article"
)

type GetHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP handles GET /news/get-news-byId?id=.
//
// @Summary      Get news by id
// @Tags         news
// @Produce      json
// @Param        id  query string true "News id"
// @Success      201 {object} respond.Envelope{data=DTO} "News Found Successfully"
// @Failure      401 {object} respond.Envelope "No News Found..."
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/get-news-byId [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	article, err := h.Svc.GetByID(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, logger, err, msgNoRecord)
		return
	}

	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgFound,
		Data:  toDTO(article),
		Error: msgNoError,
	})
}

type SliderHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP handles GET /news/get-slider-news.
//
// @Summary      List slider news
// @Tags         news
// @Produce      json
// @Success      201 {object} respond.Envelope{data=[]DTO} "News Found Successfully"
// @Failure      401 {object} respond.Envelope "No News Found..."
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/get-slider-news [get]
func (h SliderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	articles, err := h.Svc.GetSlider(r.Context())
	if err != nil {
		writeError(w, logger, err, msgNoRecord)
		return
	}

	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgFound,
		Data:  toDTOs(articles),
		Error: msgNoError,
	})
}

type CategoryHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP handles GET /news/get-news-category?id=. The id is a category id.
//
// @Summary      List news by category
// @Tags         news
// @Produce      json
// @Param        id  query string true "Category id"
// @Success      201 {object} respond.Envelope{data=[]DTO} "News Found Successfully"
// @Failure      401 {object} respond.Envelope "No News Found..."
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/get-news-category [get]
func (h CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	articles, err := h.Svc.GetByCategory(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, logger, err, msgNoRecord)
		return
	}

	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgFound,
		Count: respond.IntPtr(len(articles)),
		Data:  toDTOs(articles),
		Error: msgNoError,
	})
}
