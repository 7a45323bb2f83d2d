package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// handleError maps a service error to a status code. Messages of
// unexpected errors never reach the client.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDriveNotConnected):
		writeError(w, http.StatusConflict, "google drive is not connected")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrObjectStore):
		log.WarnContext(r.Context(), "object store error", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "object store request failed")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// queryInt reads an optional integer query parameter. A missing value
// yields def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// pathUUID parses a UUID path value.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryBool reads an optional boolean query parameter. A missing value
// yields nil.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}
