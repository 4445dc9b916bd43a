package server

import "net/http"

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - analysis
	mux.HandleFunc("/api/analyze", s.app.AnalyzeHandler.AnalyzeHandler) // POST - analyze 1-50 headlines
	mux.HandleFunc("/api/sample", s.app.AnalyzeHandler.SampleHandler)   // GET - analyze bundled samples
	mux.HandleFunc("/api/summary", s.app.AnalyzeHandler.SummaryHandler) // GET - rollup over bundled samples

	// API routes - service
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)

	// Everything else is a JSON 404
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
