package adapthttp

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"healthsurvey/internal/export"
)

var errNoResponses = errors.New("no survey responses available for download")

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	responses, err := s.survey.ListResponses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(responses) == 0 {
		writeError(w, http.StatusNotFound, errNoResponses)
		return
	}

	name := export.Filename("csv", time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	// Headers are already sent; a mid-stream failure can only be logged.
	if err := export.WriteResponsesCSV(w, responses); err != nil {
		log.Printf("download csv: %v", err)
	}
}

func (s *Server) handleDownloadExcel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	responses, err := s.survey.ListResponses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(responses) == 0 {
		writeError(w, http.StatusNotFound, errNoResponses)
		return
	}

	name := export.Filename("xlsx", time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := export.WriteResponsesExcel(w, responses); err != nil {
		log.Printf("download excel: %v", err)
	}
}
