package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/hellofanny/faststore/internal/sections"
)

type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	TextCode string `json:"text_code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	resp := errorResponse{Message: err.Error()}
	var typed *goerrors.Error
	if errors.As(err, &typed) {
		resp.TextCode = typed.TextCode
	}

	switch {
	case errors.Is(err, sections.ErrUnknownSection):
		resp.Error = "not_found"
		return http.StatusNotFound, resp
	case errors.Is(err, sections.ErrOverrideUnimplemented):
		resp.Error = "not_implemented"
		return http.StatusNotImplemented, resp
	case errors.Is(err, errBadRequest):
		resp.Error = "bad_request"
		return http.StatusBadRequest, resp
	default:
		resp.Error = "internal_error"
		return http.StatusInternalServerError, resp
	}
}

var errBadRequest = errors.New("http: bad request")

// parseOptionalBool returns nil when raw is empty.
func parseOptionalBool(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Join(errBadRequest, err)
	}
	return &value, nil
}

// parseOptionalRatio returns nil when raw is empty and rejects non-positive values.
func parseOptionalRatio(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Join(errBadRequest, err)
	}
	if value <= 0 {
		return nil, errors.Join(errBadRequest, errors.New("aspect_ratio must be positive"))
	}
	return &value, nil
}

func htmlHeader(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
