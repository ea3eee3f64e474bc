package article

import (
	"log/slog"
	"net/http"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	artUC "news-portal/internal/usecase/article"
)

type UpdateHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP handles PUT /news/update-news?id=. The JSON body may carry any
// of title, content, author, category and addToSlider; other fields,
// addedAt included, are rejected.
//
// @Summary      Update news
// @Description  Writes only the supplied fields
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       query string        true "News id"
// @Param        request  body  UpdateRequest true "Fields to change"
// @Success      201 {object} respond.Envelope{data=DTO} "News Updated Successfully"
// @Failure      401 {object} respond.Envelope "Invalid data or unknown id"
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/update-news [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	req, err := decodeUpdate(r.Body)
	if err != nil {
		writeError(w, logger, err, msgNotUpdated)
		return
	}

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:          r.URL.Query().Get("id"),
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Category:    req.Category,
		AddToSlider: req.AddToSlider,
	})
	if err != nil {
		writeError(w, logger, err, msgNotUpdated)
		return
	}

	logger.Info("news updated", slog.String("id", updated.ID))
	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgUpdated,
		Data:  toDTO(updated),
		Error: msgNoError,
	})
}
