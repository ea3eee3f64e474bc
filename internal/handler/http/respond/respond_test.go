package respond

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "map",
			code:         http.StatusOK,
			data:         map[string]string{"message": "success"},
			expectedBody: `{"message":"success"}`,
		},
		{
			name:         "nil body",
			code:         http.StatusNoContent,
			data:         nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.expectedBody {
				t.Errorf("body = %q, want %q", got, tt.expectedBody)
			}
		})
	}
}

func TestEnvelope_KeyOrderAndOmission(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want string
	}{
		{
			name: "list success",
			env: Envelope{
				Msg:        "News Found Successfully",
				Count:      IntPtr(2),
				TotalCount: Int64Ptr(5),
				Data:       []string{"a", "b"},
				Error:      "No Error",
			},
			want: `{"success":true,"msg":"News Found Successfully","count":2,"totalCount":5,"data":["a","b"],"error":"No Error"}`,
		},
		{
			name: "zero count is kept",
			env:  Envelope{Msg: "m", Count: IntPtr(0), TotalCount: Int64Ptr(0), Data: []string{}},
			want: `{"success":true,"msg":"m","count":0,"totalCount":0,"data":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			OK(w, http.StatusCreated, tt.env)
			if got := strings.TrimSpace(w.Body.String()); got != tt.want {
				t.Errorf("body =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, http.StatusUnauthorized, "No News Found...", "Record Not Found..")

	want := `{"success":false,"msg":"No News Found...","error":"Record Not Found.."}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestInternal_MasksAndLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	w := httptest.NewRecorder()
	Internal(w, logger, errors.New("connect postgres://news:topsecret@db:5432/portal: refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "topsecret") || strings.Contains(logs.String(), "topsecret") {
		t.Fatalf("password leaked: body=%s logs=%s", body, logs.String())
	}
	if !strings.Contains(body, `"msg":"Internal Server Error occured."`) {
		t.Errorf("unexpected body: %s", body)
	}
	if !strings.Contains(body, "news:****@db") {
		t.Errorf("masked error text missing: %s", body)
	}
}
