package adapthttp

import (
	"errors"
	"net/http"

	"healthsurvey/internal/app"
	"healthsurvey/internal/domain"
)

func (s *Server) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var sub domain.Submission
	if err := parseJSON(r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	stored, err := s.survey.SubmitSurvey(r.Context(), sub)
	if err != nil {
		if errors.Is(err, app.ErrUnknownEmployee) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Survey submitted successfully",
		"data":    stored,
	})
}

func (s *Server) handleSurveyResponses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	responses, err := s.survey.ListResponses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if responses == nil {
		responses = []domain.Response{}
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	stats, err := s.stats.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
