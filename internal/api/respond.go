package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"familiaconnect/internal/domain"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps domain errors to status codes, logging anything unexpected
func (a *API) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrUnknownFilter),
		errors.Is(err, domain.ErrUnknownPriority),
		errors.Is(err, domain.ErrUnknownActivity),
		errors.Is(err, domain.ErrEmptyMemberName):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Error("Request failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
