package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/fruitie/internal/common"
)

const maxBodyBytes = 1 << 20

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

type validationBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

var errBadBody = errors.New("invalid request body")

// decode reads a single JSON object of at most maxBodyBytes into dst.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errBadBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errBadBody
	}
	return nil
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// logged and answered with a generic 500.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *common.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, validationBody{Error: common.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, errBadBody):
		Error(w, http.StatusBadRequest, errBadBody.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		Error(w, http.StatusConflict, common.ErrDuplicateEmail.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		Error(w, http.StatusUnauthorized, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorNotFound):
		Error(w, http.StatusNotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrAssistantUnavailable):
		Error(w, http.StatusBadGateway, common.ErrAssistantUnavailable.Error())
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		Error(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}
