package article

import (
	"log/slog"
	"net/http"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	artUC "news-portal/internal/usecase/article"
)

type DeleteHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP handles DELETE /news/delete-news?id=. The body of the removed
// article is returned.
//
// @Summary      Delete news
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        id  query string true "News id"
// @Success      201 {object} respond.Envelope{data=DTO} "News Deleted Successfully"
// @Failure      401 {object} respond.Envelope "Unknown id"
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/delete-news [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	deleted, err := h.Svc.Delete(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, logger, err, msgNoRecord)
		return
	}

	logger.Info("news deleted", slog.String("id", deleted.ID))
	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgDeleted,
		Data:  toDTO(deleted),
		Error: msgNoError,
	})
}
