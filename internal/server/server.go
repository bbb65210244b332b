package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/fightpicks/fightpicks/internal/auth"
	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/database"
	"github.com/fightpicks/fightpicks/internal/handler"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/prediction"
	"github.com/fightpicks/fightpicks/internal/resolution"
	"github.com/fightpicks/fightpicks/internal/scorecard"
	"github.com/fightpicks/fightpicks/internal/stats"
	"github.com/fightpicks/fightpicks/internal/user"
)

// Options configures the HTTP surface
type Options struct {
	Port               int
	TrustedProxies     []string
	CORSAllowedOrigins []string
	SecureCookies      bool
	AdminSessionTTL    time.Duration
}

// Services bundles the domain services behind the routes
type Services struct {
	Catalog    catalog.Service
	Prediction prediction.Service
	Scorecard  scorecard.Service
	Stats      stats.Service
	User       user.Service
	Resolution resolution.Service
}

// Server owns the HTTP listener
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services, tokens auth.TokenParser, sessions *auth.AdminSessions) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc, tokens, sessions),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(opts Options, dbPool database.Pool, svc Services, tokens auth.TokenParser, sessions *auth.AdminSessions) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	clientIP := func(req *http.Request) string { return extractIP(req, opts.TrustedProxies) }

	// Middleware stack
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           CORSMaxAgeSeconds,
	}).Handler)
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthFailureMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	loginLimit := auth.RateLimit(auth.NewIPRateLimiter(rate.Limit(LoginRatePerSecond), LoginBurst), clientIP)
	requireUser := auth.RequireUser(tokens)
	requireAdmin := auth.RequireAdmin(sessions)

	// Operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Telegram login; logout only tells the client to drop its token
	r.With(loginLimit).Post("/auth/telegram", handler.HandleTelegramLogin(svc.User))
	r.Post("/auth/logout", handler.HandleTelegramLogout())

	// Public catalog routes
	r.Get("/events", handler.HandleListEvents(svc.Catalog))
	r.Get("/events/{slug}", handler.HandleGetEvent(svc.Catalog))

	r.Route("/fights/{id}", func(r chi.Router) {
		r.Get("/", handler.HandleGetFight(svc.Catalog))
		r.Get("/stats", handler.HandleGetFightStats(svc.Catalog, svc.Stats))
	})

	r.Route("/fighters/{id}", func(r chi.Router) {
		r.Get("/", handler.HandleGetFighter(svc.Catalog))
		r.Get("/fights", handler.HandleListFighterFights(svc.Catalog))
	})

	// Pick routes, writes require a user token
	r.Route("/predictions", func(r chi.Router) {
		r.Get("/fight/{id}", handler.HandleListFightPredictions(svc.Prediction))
		r.Get("/fight/{id}/stats", handler.HandleGetPredictionStats(svc.Stats))

		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Post("/", handler.HandleCreatePrediction(svc.Prediction))
			r.Get("/mine", handler.HandleListMyPredictions(svc.Prediction))
			r.Get("/mine/fight/{id}", handler.HandleGetMyFightPrediction(svc.Prediction))
		})
	})

	r.Route("/scorecards", func(r chi.Router) {
		r.Get("/fight/{id}", handler.HandleListFightScorecards(svc.Scorecard))
		r.Get("/fight/{id}/stats", handler.HandleGetScorecardStats(svc.Stats))

		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Post("/", handler.HandleCreateScorecard(svc.Scorecard))
			r.Get("/mine", handler.HandleListMyScorecards(svc.Scorecard))
			r.Get("/mine/fight/{id}", handler.HandleGetMyFightScorecard(svc.Scorecard))
		})
	})

	// User routes
	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Get("/me", handler.HandleGetMe(svc.User))
			r.Get("/me/stats", handler.HandleGetMyStats(svc.Stats))
		})
		r.Get("/{id}", handler.HandleGetUser(svc.User))
		r.Get("/{id}/stats", handler.HandleGetUserStats(svc.Stats))
	})

	// Admin routes
	adminAuth := handler.NewAdminAuthHandler(sessions, opts.AdminSessionTTL, opts.SecureCookies)
	adminCatalog := handler.NewAdminCatalogHandler(svc.Catalog)
	adminResults := handler.NewAdminResultHandler(svc.Resolution)
	adminCache := handler.NewAdminCacheHandler(svc.User)
	r.Route("/admin", func(r chi.Router) {
		r.With(loginLimit).Post("/login", adminAuth.HandleLogin)
		r.Post("/logout", adminAuth.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/me", adminAuth.HandleMe)
			r.Get("/organizations", adminCatalog.HandleListOrganizations)
			r.Get("/cache/stats", adminCache.HandleGetCacheStats)

			// Admin catalog routes
			r.Route("/fighters", func(r chi.Router) {
				r.Get("/", adminCatalog.HandleListFighters)
				r.Post("/", adminCatalog.HandleCreateFighter)
				r.Get("/{id}", adminCatalog.HandleGetFighter)
				r.Put("/{id}", adminCatalog.HandleUpdateFighter)
				r.Delete("/{id}", adminCatalog.HandleDeleteFighter)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", adminCatalog.HandleListEvents)
				r.Post("/", adminCatalog.HandleCreateEvent)
				r.Get("/{id}", adminCatalog.HandleGetEvent)
				r.Put("/{id}", adminCatalog.HandleUpdateEvent)
				r.Delete("/{id}", adminCatalog.HandleDeleteEvent)
			})

			r.Route("/fights", func(r chi.Router) {
				r.Get("/", adminCatalog.HandleListFights)
				r.Post("/", adminCatalog.HandleCreateFight)
				r.Get("/{id}", adminCatalog.HandleGetFight)
				r.Put("/{id}", adminCatalog.HandleUpdateFight)
				r.Delete("/{id}", adminCatalog.HandleDeleteFight)

				// Grading; every write re-scores the fight's picks
				r.Get("/{id}/result", adminResults.HandleGetResult)
				r.Post("/{id}/result", adminResults.HandleRecordResult)
				r.Put("/{id}/result", adminResults.HandleUpdateResult)
				r.Delete("/{id}/result", adminResults.HandleDeleteResult)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID and add it to context
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Bearer tokens and the admin session cookie never reach the logs
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
