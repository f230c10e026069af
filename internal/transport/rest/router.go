package rest

import (
	"intakeflow/internal/service"
	"intakeflow/internal/transport/rest/handler"
	"intakeflow/internal/transport/rest/middleware"
	"intakeflow/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	IntakeService *service.IntakeService
	WizardService *service.WizardService
	WSHub         *ws.Hub
	CORSOrigins   []string
	Logger        *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler()
	intakeHandler := handler.NewIntakeHandler(c.IntakeService)
	sessionHandler := handler.NewSessionHandler(c.WizardService, logger)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.WithAccessToken)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/validate", intakeHandler.Validate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/intakes", intakeHandler.Submit).Methods("POST", "OPTIONS")

	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers/{questionId}", sessionHandler.SetAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/advance", sessionHandler.Advance).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/retreat", sessionHandler.Retreat).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/submit", sessionHandler.Submit).Methods("POST", "OPTIONS")

	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.WizardService, logger)
		v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")
	}

	return r
}

func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
