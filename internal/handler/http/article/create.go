package article

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	artUC "news-portal/internal/usecase/article"
)

// multipartMemory is the part of a form kept in memory; the rest spills
// to temporary files.
const multipartMemory = 8 << 20

type CreateHandler struct {
	Svc            *artUC.Service
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// ServeHTTP handles POST /news/add-news. The body is multipart/form-data
// with the text fields title, content, author, category and addToSlider
// and the file part newsImage.
//
// @Summary      Create news
// @Description  Stores a news article with its image inlined as a data URI
// @Tags         news
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData string true  "Headline"
// @Param        content      formData string true  "Body"
// @Param        author       formData string true  "Author"
// @Param        category     formData string true  "Category id"
// @Param        addToSlider  formData bool   false "Show in the slider"
// @Param        newsImage    formData file   true  "Image"
// @Success      201 {object} respond.Envelope{data=DTO} "News Added Successfully"
// @Failure      401 {object} respond.Envelope "Invalid data or token"
// @Failure      500 {object} respond.Envelope "Internal error"
// @Router       /news/add-news [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, logger, formError(err), msgNotAdded)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req := CreateRequest{
		Title:       r.FormValue("title"),
		Content:     r.FormValue("content"),
		Author:      r.FormValue("author"),
		Category:    r.FormValue("category"),
		AddToSlider: strings.ToLower(strings.TrimSpace(r.FormValue("addToSlider"))),
	}
	if err := checkSchema(req); err != nil {
		writeError(w, logger, err, msgNotAdded)
		return
	}

	file, header, err := r.FormFile("newsImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeError(w, logger, fieldError("newsImage", "newsImage is required"), msgNotAdded)
			return
		}
		writeError(w, logger, err, msgNotAdded)
		return
	}
	defer file.Close()

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Category:    req.Category,
		AddToSlider: req.Slider(),
		Image: artUC.ImageUpload{
			Reader:   file,
			MIMEType: declaredImageType(header.Header.Get("Content-Type")),
		},
	})
	if err != nil {
		writeError(w, logger, err, msgNotAdded)
		return
	}

	logger.Info("news created", slog.String("id", created.ID))
	respond.OK(w, http.StatusCreated, respond.Envelope{
		Msg:   msgAdded,
		Data:  toDTO(created),
		Error: msgNoError,
	})
}

// declaredImageType returns the media type of a file part, or "" when the
// client sent none or a generic one.
func declaredImageType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt == "application/octet-stream" {
		return ""
	}
	return mt
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fieldError("newsImage", "upload exceeds the size limit")
	}
	if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
		return fieldError("body", "must be multipart/form-data")
	}
	return fieldError("body", "malformed multipart form")
}
