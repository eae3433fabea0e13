package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/DailyRoutines/isptranslator"
)

type translateRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.translator.Translate(r.Context(), req.Text, req.Locale)
	if err != nil {
		s.respondTranslateError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondTranslateError maps the core error taxonomy to status codes:
// validation failures are client faults, provider failures are bad-gateway,
// store read failures are retryable infrastructure errors.
func (s *Server) respondTranslateError(w http.ResponseWriter, err error) {
	var verr *isptranslator.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	var perr *isptranslator.ProviderError
	if errors.As(err, &perr) {
		s.logger.Error("provider failure", zap.Error(err))
		respondError(w, http.StatusBadGateway, "translation provider unavailable")
		return
	}

	var serr *isptranslator.StoreError
	if errors.As(err, &serr) {
		s.logger.Error("store failure", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	s.logger.Error("unexpected failure", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": isptranslator.FullVersion(),
	})
}

// requireAuth enforces bearer-token auth when a token is configured. The
// comparison is constant time.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if s.authToken != "" {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(token), []byte(s.authToken)) != 1 {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next(w, r)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
