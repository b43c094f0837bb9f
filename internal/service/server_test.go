package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fnlab/domainfn/pkg/log"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	logger := log.NewNoop()
	return NewServer(DefaultConfig(), NewService(store, logger), logger)
}

type resultBody struct {
	Success           bool             `json:"success"`
	Data              json.RawMessage  `json:"data"`
	Errors            []map[string]any `json:"errors"`
	InputErrors       []schemaErrBody  `json:"inputErrors"`
	EnvironmentErrors []schemaErrBody  `json:"environmentErrors"`
}

type schemaErrBody struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (int, resultBody) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var rb resultBody
	if err := json.Unmarshal(rec.Body.Bytes(), &rb); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, rb
}

func TestSignupSuccess(t *testing.T) {
	srv := testServer(t)

	status, rb := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse"}`,
		map[string]string{"Accept-Language": "pt"})
	if status != http.StatusCreated || !rb.Success {
		t.Fatalf("expected 201 success, got %d %+v", status, rb)
	}
	var account Account
	if err := json.Unmarshal(rb.Data, &account); err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if account.Locale != "pt" {
		t.Fatalf("expected locale from Accept-Language, got %q", account.Locale)
	}
}

func TestSignupValidationFailure(t *testing.T) {
	srv := testServer(t)

	status, rb := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts",
		`{"name":"A","email":"nope"}`, nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	fields := map[string]bool{}
	for _, se := range rb.InputErrors {
		fields[se.Path[0]] = true
	}
	for _, want := range []string{"name", "email", "password"} {
		if !fields[want] {
			t.Fatalf("expected an issue on %s, got %+v", want, rb.InputErrors)
		}
	}
}

func TestSignupDuplicateEmailIsAFieldError(t *testing.T) {
	srv := testServer(t)
	body := `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`

	if status, _ := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts", body, nil); status != http.StatusCreated {
		t.Fatalf("first signup should succeed, got %d", status)
	}
	status, rb := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts", body, nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate, got %d", status)
	}
	if len(rb.InputErrors) != 1 || rb.InputErrors[0].Path[0] != "email" {
		t.Fatalf("expected field error on email, got %+v", rb.InputErrors)
	}
	if len(rb.Errors) != 0 {
		t.Fatalf("duplicate email is not a generic error: %+v", rb.Errors)
	}
}

func TestSignupEmptyBodyReportsMissingFields(t *testing.T) {
	srv := testServer(t)

	status, rb := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts", "", nil)
	if status != http.StatusUnprocessableEntity || len(rb.InputErrors) == 0 {
		t.Fatalf("expected validation failure, got %d %+v", status, rb)
	}
}

func TestListRequiresAdminRole(t *testing.T) {
	srv := testServer(t)

	status, rb := doJSON(t, srv.Handler(), http.MethodGet, "/v1/accounts", "", nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if len(rb.EnvironmentErrors) != 1 || rb.EnvironmentErrors[0].Path[0] != "role" {
		t.Fatalf("expected environment error on role, got %+v", rb)
	}

	status, rb = doJSON(t, srv.Handler(), http.MethodGet, "/v1/accounts", "",
		map[string]string{"X-Role": "admin"})
	if status != http.StatusOK || !rb.Success {
		t.Fatalf("expected admin to list, got %d %+v", status, rb)
	}
}

func TestOverviewAggregates(t *testing.T) {
	srv := testServer(t)
	doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse"}`, nil)

	status, rb := doJSON(t, srv.Handler(), http.MethodGet, "/v1/overview", "",
		map[string]string{"X-Role": "admin"})
	if status != http.StatusOK || !rb.Success {
		t.Fatalf("expected success, got %d %+v", status, rb)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(rb.Data, &data); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if string(data["total"]) != "1" {
		t.Fatalf("expected total 1, got %s", data["total"])
	}
	if _, ok := data["accounts"]; !ok {
		t.Fatalf("expected accounts key, got %+v", data)
	}
}

func TestDefaultLocaleFollowsConfigReload(t *testing.T) {
	srv := testServer(t)

	cfg := DefaultConfig()
	cfg.DefaultLocale = "fr"
	srv.UpdateConfig(cfg)

	_, rb := doJSON(t, srv.Handler(), http.MethodPost, "/v1/accounts",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse"}`, nil)
	var account Account
	if err := json.Unmarshal(rb.Data, &account); err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if account.Locale != "fr" {
		t.Fatalf("expected reloaded default locale, got %q", account.Locale)
	}
}
