// Package http serves the one-button roll page, a small JSON API and the metrics endpoint.
package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/primality"
	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the server dependencies
type Config struct {
	RollerService    roller.Service
	MessagingService messaging.Service

	// Optional, /metrics is only mounted when set
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Server handles web and API requests
type Server struct {
	rollerService    roller.Service
	messagingService messaging.Service
	metrics          *metrics.Metrics
	logger           *slog.Logger
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		rollerService:    cfg.RollerService,
		messagingService: cfg.MessagingService,
		metrics:          cfg.Metrics,
		logger:           logger,
	}, nil
}

// Handler builds the router
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.Index)
	r.Post("/roll", s.Roll)
	r.Get("/healthz", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/prime/{n}", s.CheckPrime)
		r.Get("/history", s.History)
		r.Get("/stats", s.Stats)
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// Index renders the roll page
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, &pageData{})
}

// Roll handles POST /roll. JSON clients get a rollResponse, browsers get the page back.
func (s *Server) Roll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playerName := strings.TrimSpace(r.FormValue("name"))
	if playerName == "" {
		playerName = "Someone"
	}

	rollOutput, err := s.rollerService.RollAndCheck(ctx, &roller.RollAndCheckInput{
		ChannelID:  models.ChannelWeb,
		PlayerID:   models.ChannelWeb,
		PlayerName: playerName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	msgOutput, err := s.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: playerName,
		RollValue:  rollOutput.Roll.Value,
		IsPrime:    rollOutput.Roll.IsPrime,
		Tone:       messaging.MessageTone(r.FormValue("tone")),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, rollResponse{
			ID:       rollOutput.Roll.ID,
			Value:    rollOutput.Roll.Value,
			IsPrime:  rollOutput.Roll.IsPrime,
			Title:    msgOutput.Title,
			Outcome:  msgOutput.Outcome,
			Comment:  msgOutput.Comment,
			Recorded: rollOutput.Recorded,
		})
		return
	}

	s.renderPage(w, http.StatusOK, &pageData{
		Name:    playerName,
		Title:   msgOutput.Title,
		Value:   rollOutput.Roll.Value,
		Outcome: msgOutput.Outcome,
		Comment: msgOutput.Comment,
	})
}

// CheckPrime handles GET /api/prime/{n}
func (s *Server) CheckPrime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	output, err := s.rollerService.CheckPrime(ctx, &roller.CheckPrimeInput{
		Text: chi.URLParam(r, "n"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	msgOutput, err := s.messagingService.GetPrimeCheckMessage(ctx, &messaging.GetPrimeCheckMessageInput{
		N:       output.N,
		IsPrime: output.IsPrime,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, primeResponse{
		N:       output.N,
		IsPrime: output.IsPrime,
		Message: msgOutput.Message,
	})
}

// History handles GET /api/history?channel=&limit=
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a whole number"})
			return
		}
		limit = parsed
	}

	output, err := s.rollerService.GetHistory(r.Context(), &roller.GetHistoryInput{
		ChannelID: channelParam(r),
		Limit:     limit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rolls := make([]historyEntry, 0, len(output.Rolls))
	for _, roll := range output.Rolls {
		rolls = append(rolls, historyEntry{
			ID:         roll.ID,
			Value:      roll.Value,
			IsPrime:    roll.IsPrime,
			PlayerName: roll.PlayerName,
			Timestamp:  roll.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, historyResponse{Rolls: rolls})
}

// Stats handles GET /api/stats?channel=
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	output, err := s.rollerService.GetStats(ctx, &roller.GetStatsInput{
		ChannelID: channelParam(r),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	msgOutput, err := s.messagingService.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Stats: output.Stats,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	faces := make(map[string]int64, len(output.Stats.Faces))
	for face, count := range output.Stats.Faces {
		faces[strconv.Itoa(face)] = count
	}

	writeJSON(w, http.StatusOK, statsResponse{
		ChannelID: output.Stats.ChannelID,
		Total:     output.Stats.Total,
		Primes:    output.Stats.Primes,
		Faces:     faces,
		Summary:   msgOutput.Summary,
	})
}

// Health handles GET /healthz
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps service errors to a status code and a friendly message
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}

	message := err.Error()
	if msgOutput, msgErr := s.messagingService.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{Err: err}); msgErr == nil {
		message = msgOutput.Message
	}

	if wantsJSON(r) || strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, status, errorResponse{Error: message})
		return
	}

	s.renderPage(w, status, &pageData{Error: message})
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render page", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func errorStatus(err error) int {
	var parseErr *primality.ParseError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.Is(err, roller.ErrInvalidInput), errors.Is(err, roller.ErrMissingChannel):
		return http.StatusBadRequest
	case errors.Is(err, roller.ErrNoHistory):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func channelParam(r *http.Request) string {
	if channel := r.URL.Query().Get("channel"); channel != "" {
		return channel
	}
	return models.ChannelWeb
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Prime Dice</title>
</head>
<body>
<main>
    <h1>Prime Dice</h1>
    <form method="post" action="/roll">
        <input type="text" name="name" placeholder="Your name" value="{{.Name}}" />
        <button type="submit">Roll the dice</button>
    </form>
    {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
    {{if .Outcome}}
    <section class="result">
        <h2>{{.Title}}</h2>
        <p class="value">{{.Value}}</p>
        <p>{{.Outcome}}</p>
        <p><em>{{.Comment}}</em></p>
    </section>
    {{end}}
</main>
</body>
</html>
`
