// Package server exposes quiz generation over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// Generator produces quizzes from a source request.
type Generator interface {
	GenerateQuiz(ctx context.Context, req quiz.GenerationRequest) quiz.GenerationResult
}

// TopicGenerator produces quizzes from a bare topic.
type TopicGenerator interface {
	Synthesize(ctx context.Context, topic string, numQuestions int) *quiz.Quiz
}

// Server handles the HTTP API.
type Server struct {
	generator Generator
	topics    TopicGenerator
	log       *zap.Logger
}

// New wires a Server. Either generator may be nil; its routes then
// answer 503.
func New(generator Generator, topics TopicGenerator, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{generator: generator, topics: topics, log: log}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/quiz", s.handleGenerate)
	r.Post("/api/topic-quiz", s.handleTopicQuiz)

	return r
}

// logRequests is chi's logger middleware routed through zap.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
