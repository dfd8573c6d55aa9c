package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/user/movie-memo-go/apperror"
)

func TestWriteErrorMapsKindsToStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "already exists",
			err:        apperror.NewAlreadyExists("user 'alice' already exists"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "user 'alice' already exists",
		},
		{
			name:       "invalid arguments",
			err:        apperror.NewInvalidArguments("username is required", nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   "username is required",
		},
		{
			name:       "not found",
			err:        apperror.NewNotFound("no such user", nil),
			wantStatus: http.StatusNotFound,
			wantBody:   "no such user",
		},
		{
			name:       "storage failure is masked",
			err:        apperror.NewStorageFailure("connection refused to host db-1", errors.New("refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "something went wrong, please try again later",
		},
		{
			name:       "raw errors become storage failures",
			err:        errors.New("some driver error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "something went wrong, please try again later",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/user", nil)

			WriteError(rec, req, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body apperror.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Error != tc.wantBody {
				t.Errorf("body = %q, want %q", body.Error, tc.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q, want application/json", ct)
			}
		})
	}
}

func TestHandleCreateUserRejectsBadJSON(t *testing.T) {
	h := NewHandlers(NewService(nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user", nil)
	h.HandleCreateUser().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty body", rec.Code)
	}
}

func TestHandleListUsersRequiresUsername(t *testing.T) {
	h := NewHandlers(NewService(nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	h.HandleListUsers().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when username is missing", rec.Code)
	}
}
