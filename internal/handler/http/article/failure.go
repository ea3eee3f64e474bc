package article

import (
	"errors"
	"log/slog"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

// Envelope messages. Client code matches on them, typos included.
const (
	msgAdded       = "Successfully Added News"
	msgFound       = "News Found Successfully"
	msgUpdated     = "News Updated Successfully"
	msgDeleted     = "News Deleted Successfully"
	msgNoError     = "No Error"
	msgInvalidData = "Inavalid Data. Something Went Wrong Please Try Again Later !"
	msgNotAdded    = "Record Not Added.."
	msgNotUpdated  = "Record Not Updated.."
	msgNotFound    = "No News Found..."
	msgNoRecord    = "Record Not Found.."
	msgInvalidPage = "Invalid page number"
	msgPageDetail  = "Invalid page number, should start with 1"
)

// Caller mistakes are reported with 401; everything else is a 500.
const statusRejected = http.StatusUnauthorized

// writeError renders err as a failure envelope. rejected is the error text
// used for validation failures that carry no field detail.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error, rejected string) {
	var (
		schemaErr *schemaError
		fieldErr  *entity.ValidationError
	)
	switch {
	case errors.As(err, &schemaErr):
		logger.Info("news request rejected", slog.String("error", err.Error()))
		respond.Fail(w, statusRejected, msgInvalidData, schemaErr.details)
	case errors.Is(err, artUC.ErrInvalidPage):
		logger.Info("invalid page requested", slog.String("error", err.Error()))
		respond.Fail(w, statusRejected, msgInvalidPage, msgPageDetail)
	case errors.Is(err, artUC.ErrNotFound):
		logger.Info("news not found", slog.String("error", err.Error()))
		respond.Fail(w, statusRejected, msgNotFound, msgNoRecord)
	case errors.Is(err, artUC.ErrValidation):
		logger.Info("news rejected by validation", slog.String("error", err.Error()))
		if errors.As(err, &fieldErr) {
			respond.Fail(w, statusRejected, msgInvalidData,
				Details{fieldErr.Field: fieldErr.Field + " " + fieldErr.Message})
			return
		}
		respond.Fail(w, statusRejected, msgInvalidData, rejected)
	default:
		respond.Internal(w, logger, err)
	}
}
