package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"prepmate-backend/internal/handlers"
	"prepmate-backend/internal/middleware"
	"prepmate-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	questionHandler *handlers.QuestionHandler,
	evaluationHandler *handlers.EvaluationHandler,
	importHandler *handlers.ImportHandler,
	domainHandler *handlers.DomainHandler,
	interviewHandler *handlers.InterviewHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Legacy aliases for the original mobile client. Same handlers, older
	// paths, no auth (the original proxy had none).
	r.Post("/generate-question", questionHandler.Generate)
	r.Post("/evaluate-answer", evaluationHandler.Evaluate)

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Question Routes ────
		r.Route("/questions", func(r chi.Router) {
			r.Post("/generate", questionHandler.Generate) // Public, legacy contract

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/generate-from-resume", questionHandler.GenerateFromResume)
			})
		})

		// ──── Answer Evaluation ────
		r.Route("/answers", func(r chi.Router) {
			r.Post("/evaluate", evaluationHandler.Evaluate) // Public, legacy contract
		})

		// ──── Quiz Import Routes ────
		r.Route("/quizzes", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/import", importHandler.ImportQuiz)
			r.Post("/validate", importHandler.Validate)
		})

		// ──── Domain & Question Set Routes ────
		r.Route("/domains", func(r chi.Router) {
			r.Get("/", domainHandler.List) // Public

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/", domainHandler.Create)
				r.Get("/{id}", domainHandler.Get)
			})
		})

		r.Route("/question-sets", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", domainHandler.ListSets)
			r.Get("/{id}", domainHandler.GetSet)
		})

		// ──── Interview Routes ────
		r.Route("/interviews", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", interviewHandler.Create)
			r.Get("/", interviewHandler.List)
			r.Get("/{id}", interviewHandler.Get)
			r.Post("/{id}/answers", interviewHandler.SubmitAnswer)
			r.Post("/{id}/analyze", evaluationHandler.Analyze)
			r.Post("/{id}/complete", interviewHandler.Complete)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/summary", interviewHandler.Dashboard)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
