// Package adapthttp is the driving HTTP adapter that routes requests to
// application services.
package adapthttp

import (
	"net/http"

	"healthsurvey/internal/app"
)

// Server routes survey API requests to the application services.
type Server struct {
	directory  *app.DirectoryService
	survey     *app.SurveyService
	stats      *app.StatsService
	corsOrigin string
}

// New creates a Server wired to the given application services.
// corsOrigin is the allowed browser origin; empty disables CORS headers.
func New(d *app.DirectoryService, s *app.SurveyService, st *app.StatsService, corsOrigin string) *Server {
	return &Server{directory: d, survey: s, stats: st, corsOrigin: corsOrigin}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/employees", s.handleEmployees)
	mux.HandleFunc("/submit-survey", s.handleSubmitSurvey)
	mux.HandleFunc("/survey-responses", s.handleSurveyResponses)
	mux.HandleFunc("/download-survey-responses", s.handleDownloadCSV)
	mux.HandleFunc("/download-survey-responses-excel", s.handleDownloadExcel)
	mux.HandleFunc("/survey-stats", s.handleStats)

	return s.withCORS(s.withLogging(mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Health Survey API is running"})
}
