package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	artUC "news-portal/internal/usecase/article"
)

type ListHandler struct {
	Svc        *artUC.Service
	Pagination pagination.Config
	Logger     *slog.Logger
}

// ServeHTTP handles GET /news/get-all-news?pageNo=&pageLimit=. Articles are
// returned newest first with count (page size) and totalCount (all news).
//
// @Summary      List news
// @Description  Returns one page of news, newest first
// @Tags         news
// @Produce      json
// @Param        pageNo     query int true "1-based page number"
// @Param        pageLimit  query int true "Page size"
// @Success      201 {object} respond.Envelope{data=[]DTO} "News Found Successfully"
// @Failure      401 {object} respond.Envelope "Invalid page number"
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/get-all-news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.WithRequestID(r.Context(), h.Logger)

	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		pagination.LogError(logger, params, err, "validation")
		pagination.RecordError("validation")
		writeError(w, logger, errors.Join(artUC.ErrInvalidPage, err), "")
		return
	}

	result, err := h.Svc.List(r.Context(), params)
	if err != nil {
		if errors.Is(err, artUC.ErrInvalidPage) {
			pagination.LogError(logger, params, err, "validation")
			pagination.RecordError("validation")
		} else {
			pagination.LogError(logger, params, err, "store")
			pagination.RecordError("store")
		}
		writeError(w, logger, err, "")
		return
	}

	elapsed := time.Since(start)
	pagination.RecordRequest(http.StatusCreated, params.PageNo)
	pagination.RecordDuration("handler", elapsed.Seconds())
	if params.PageNo > result.TotalPages {
		logger.Debug("page past the last page",
			slog.Int("page_no", params.PageNo),
			slog.Int("total_pages", result.TotalPages))
	}
	pagination.LogResponse(logger, params, result.Count, result.TotalCount, result.TotalPages, elapsed, http.StatusCreated)

	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:        msgFound,
		Count:      respond.IntPtr(result.Count),
		TotalCount: respond.Int64Ptr(result.TotalCount),
		Data:       toDTOs(result.Articles),
		Error:      msgNoError,
	})
}
