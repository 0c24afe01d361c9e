package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"freight-rate-watch/internal/extract"
	"freight-rate-watch/internal/rates"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorPayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorPayload{Success: false, Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRates serves the freshness-scored best-rate view.
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.RatesView(r.Context(), time.Now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Msg("rates view failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type extractResponse struct {
	Success  bool           `json:"success"`
	Date     string         `json:"date"`
	Inserted int            `json:"inserted"`
	Rates    []rates.Record `json:"rates"`
}

// handleCronExtract triggers one extraction run for today. Only the
// configured scheduler credential may call it.
func (s *Server) handleCronExtract(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	result, err := s.svc.RunExtraction(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, extract.ErrNoRates) {
			s.logger.Error().Err(err).Msg("structural failure: page format likely changed")
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Success:  true,
		Date:     result.Date.Format("2006-01-02"),
		Inserted: result.Inserted,
		Rates:    result.Rates,
	})
}
