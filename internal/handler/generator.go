package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation and validation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles GET /api/password requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req := parseGenerateQuery(r.URL.Query())

	resp, err := h.service.Generate(req)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateBatch handles POST /api/passwords requests.
func (h *GeneratorHandler) HandleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateBatch(req)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleValidate handles POST /api/password/validate requests. The reply is
// 200 only when the password satisfies every requested requirement; weak
// passwords get their report with a 422.
func (h *GeneratorHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	password, ok := req.Password.(string)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "password must be a string")
		return
	}

	result := h.service.Validate(password, req.Requirements)

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, model.ValidateResponse{
		Success:  true,
		Password: password,
		Result:   result,
	})
}

// NotFound replies with the API's structured 404 envelope for any
// unrecognized route or method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func parseGenerateQuery(q url.Values) model.GenerateRequest {
	var req model.GenerateRequest
	if q.Has("length") {
		if n, err := strconv.Atoi(q.Get("length")); err == nil {
			req.Length = &n
		}
	}
	req.IncludeUppercase = queryBool(q, "includeUppercase")
	req.IncludeLowercase = queryBool(q, "includeLowercase")
	req.IncludeNumbers = queryBool(q, "includeNumbers")
	req.IncludeSymbols = queryBool(q, "includeSymbols")
	req.ExcludeAmbiguous = queryBool(q, "excludeAmbiguous")
	req.Exclude = q.Get("exclude")
	req.RequireEach = queryBool(q, "requireEach")
	return req
}

func queryBool(q url.Values, key string) model.FlexBool {
	if !q.Has(key) {
		return model.FlexBool{}
	}
	return model.FlexBool{Bool: model.ParseBool(q.Get(key)), Valid: true}
}

// decodeBody decodes a JSON request body into v, writing the error reply
// itself when the body is unusable. Bodies are capped at 1MB.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeEngineError maps generator errors to the error envelope. Input errors
// carry their own message; anything else stays an opaque 500.
func writeEngineError(w http.ResponseWriter, err error) {
	if crypto.IsConfigurationError(err) || crypto.IsRangeError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: true, Message: msg, Status: status})
}
