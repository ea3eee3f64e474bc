// Package respond writes JSON responses in the news envelope format.
// Internal error text is sanitized before it leaves the process.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the body of every news API response. Optional members are
// omitted when unset; key order is success, msg, count, totalCount, data, error.
type Envelope struct {
	Success    bool   `json:"success"`
	Msg        string `json:"msg"`
	Count      *int   `json:"count,omitempty"`
	TotalCount *int64 `json:"totalCount,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      any    `json:"error,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, code int, env Envelope) {
	env.Success = true
	JSON(w, code, env)
}

// Fail writes a failure envelope carrying detail as its error member.
func Fail(w http.ResponseWriter, code int, msg string, detail any) {
	JSON(w, code, Envelope{Success: false, Msg: msg, Error: detail})
}

// InternalMsg is the msg of every internal failure envelope.
const InternalMsg = "Internal Server Error occured."

// Internal logs err and writes the internal failure envelope. The error
// member is the error text with credentials masked.
func Internal(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	safe := SanitizeError(err)
	logger.Error("internal server error",
		slog.Int("code", http.StatusInternalServerError),
		slog.String("error", safe))
	Fail(w, http.StatusInternalServerError, InternalMsg, safe)
}

// IntPtr and Int64Ptr build the optional count members.
func IntPtr(v int) *int       { return &v }
func Int64Ptr(v int64) *int64 { return &v }
