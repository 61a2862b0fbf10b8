package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/passforge/passforge-go/internal/service"
)

func newTestRouter() *chi.Mux {
	h := NewGeneratorHandler(service.NewGeneratorService())

	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
	r.Get("/api/password", h.HandleGenerate)
	r.Post("/api/passwords", h.HandleGenerateBatch)
	r.Post("/api/password/validate", h.HandleValidate)
	return r
}

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestHandleGenerate(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/password?length=20", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	if out["success"] != true {
		t.Errorf("success = %v, want true", out["success"])
	}
	password, _ := out["password"].(string)
	if len(password) != 20 {
		t.Errorf("password length = %d, want 20", len(password))
	}
	if out["length"] != float64(20) {
		t.Errorf("length = %v, want 20", out["length"])
	}
	if _, ok := out["options"].(map[string]any); !ok {
		t.Errorf("options missing from response: %v", out)
	}
}

func TestHandleGenerateQueryOptions(t *testing.T) {
	rec := doRequest(t, http.MethodGet,
		"/api/password?length=30&includeSymbols=false&includeNumbers=no&excludeAmbiguous=YES", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	password, _ := out["password"].(string)
	for _, ch := range password {
		if strings.ContainsRune("0123456789", ch) {
			t.Errorf("password %q contains a number despite includeNumbers=no", password)
		}
		if strings.ContainsRune("Il1O0o", ch) {
			t.Errorf("password %q contains an ambiguous character", password)
		}
	}
	opts := out["options"].(map[string]any)
	if opts["includeSymbols"] != false || opts["includeNumbers"] != false || opts["excludeAmbiguous"] != true {
		t.Errorf("options echo wrong: %v", opts)
	}
}

func TestHandleGenerateRangeError(t *testing.T) {
	for _, target := range []string{"/api/password?length=3", "/api/password?length=129"} {
		rec := doRequest(t, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		out := decodeJSON(t, rec)
		if out["error"] != true || out["status"] != float64(400) {
			t.Errorf("%s: error envelope wrong: %v", target, out)
		}
		if msg, _ := out["message"].(string); msg == "" {
			t.Errorf("%s: missing error message", target)
		}
	}
}

func TestHandleGenerateConfigurationError(t *testing.T) {
	rec := doRequest(t, http.MethodGet,
		"/api/password?includeUppercase=false&includeLowercase=false&includeNumbers=false&includeSymbols=false", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleGenerateBatch(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/passwords", `{"count": 3, "length": 10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	if out["count"] != float64(3) {
		t.Errorf("count = %v, want 3", out["count"])
	}
	passwords, _ := out["passwords"].([]any)
	if len(passwords) != 3 {
		t.Fatalf("passwords length = %d, want 3", len(passwords))
	}
	for _, p := range passwords {
		if s, _ := p.(string); len(s) != 10 {
			t.Errorf("password %q length = %d, want 10", p, len(s))
		}
	}
}

func TestHandleGenerateBatchLenientBooleans(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/passwords",
		`{"count": 2, "length": 24, "includeSymbols": "no", "includeNumbers": 0, "requireEach": "TRUE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	opts := out["options"].(map[string]any)
	if opts["includeSymbols"] != false || opts["includeNumbers"] != false || opts["requireEach"] != true {
		t.Errorf("lenient boolean parsing wrong: %v", opts)
	}
}

func TestHandleGenerateBatchCountOutOfRange(t *testing.T) {
	for _, body := range []string{`{"count": 0}`, `{"count": 101}`} {
		rec := doRequest(t, http.MethodPost, "/api/passwords", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleGenerateBatchInvalidBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/passwords", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	body := `{
		"password": "Password123!",
		"requirements": {
			"minLength": 8,
			"requireUppercase": true,
			"requireLowercase": true,
			"requireNumbers": true,
			"requireSymbols": true
		}
	}`
	rec := doRequest(t, http.MethodPost, "/api/password/validate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	if out["password"] != "Password123!" {
		t.Errorf("password echo = %v", out["password"])
	}
	result := out["result"].(map[string]any)
	if result["valid"] != true || result["score"] != float64(100) || result["strength"] != "strong" {
		t.Errorf("result = %v, want valid/100/strong", result)
	}
	checks := result["checks"].(map[string]any)
	if len(checks) != 6 {
		t.Errorf("checks length = %d, want 6", len(checks))
	}
}

func TestHandleValidateWeakPassword(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/password/validate",
		`{"password": "Ab1!", "requirements": {"minLength": 8}}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	result := out["result"].(map[string]any)
	if result["valid"] != false {
		t.Errorf("valid = %v, want false", result["valid"])
	}
	minLength := result["checks"].(map[string]any)["minLength"].(map[string]any)
	if minLength["passed"] != false {
		t.Errorf("minLength check = %v, want failed", minLength)
	}
}

func TestHandleValidateMissingPassword(t *testing.T) {
	for _, body := range []string{`{}`, `{"password": 42}`, `{"password": null}`} {
		rec := doRequest(t, http.MethodPost, "/api/password/validate", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", body, rec.Code)
		}
		out := decodeJSON(t, rec)
		if out["error"] != true {
			t.Errorf("%s: expected error envelope, got %v", body, out)
		}
	}
}

func TestNotFoundEnvelope(t *testing.T) {
	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/nope"},
		{http.MethodDelete, "/api/password"},
		{http.MethodGet, "/api/passwords"},
	} {
		rec := doRequest(t, tc.method, tc.target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", tc.method, tc.target, rec.Code)
		}
		out := decodeJSON(t, rec)
		if out["error"] != true || out["status"] != float64(404) {
			t.Errorf("%s %s: envelope wrong: %v", tc.method, tc.target, out)
		}
	}
}
