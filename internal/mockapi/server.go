package mockapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hostkiosk/kioskctl/internal/telemetry"
)

// Server exposes a Store over the fleet REST API
type Server struct {
	store  *Store
	logger *zap.Logger
}

// NewServer wraps store; a nil logger discards request logs
func NewServer(store *Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: store, logger: logger}
}

// Routes builds the HTTP handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(s.loggingMiddleware)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)

		api.Group(func(pr chi.Router) {
			pr.Use(s.requireSession)

			pr.Post("/auth/logout", s.handleLogout)

			pr.Route("/hotels", func(h chi.Router) {
				h.Get("/", listHandler(s.store.Hotels))
				h.Post("/", s.handleCreateHotel)
				h.Get("/{id}", getHandler(s.store.Hotel))
				h.Post("/{id}/suspend", s.hotelStatus("suspended"))
				h.Post("/{id}/activate", s.hotelStatus("active"))
				h.Delete("/{id}", s.mutation(s.store.DeleteHotel))
			})

			pr.Route("/kiosks", func(k chi.Router) {
				k.Get("/", listHandler(s.store.Kiosks))
				k.Post("/", s.handleCreateKiosk)
				k.Get("/{id}", getHandler(s.store.Kiosk))
				k.Post("/{id}/assign", s.handleAssignKiosk)
				k.Post("/{id}/restart", s.mutation(s.store.RestartKiosk))
				k.Delete("/{id}", s.mutation(s.store.DeleteKiosk))
			})

			pr.Route("/users", func(u chi.Router) {
				u.Get("/", listHandler(s.store.Users))
				u.Post("/", s.handleCreateUser)
				u.Post("/{id}/suspend", s.userStatus("suspended"))
				u.Post("/{id}/activate", s.userStatus("active"))
				u.Delete("/{id}", s.mutation(s.store.DeleteUser))
			})

			pr.Route("/roles", func(rr chi.Router) {
				rr.Get("/", listHandler(s.store.Roles))
				rr.Post("/", s.handleSaveRole)
				rr.Get("/{id}", getHandler(s.store.Role))
				rr.Put("/{id}", s.handleSaveRole)
			})

			pr.Get("/invoices", listHandler(s.store.Invoices))
			pr.Get("/audit", listHandler(s.store.Audit))

			pr.Route("/tickets", func(t chi.Router) {
				t.Get("/", listHandler(s.store.Tickets))
				t.Get("/{id}", getHandler(s.store.Ticket))
				t.Post("/{id}/close", s.mutation(s.store.CloseTicket))
			})

			pr.Get("/reports/{type}", s.handleReport)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "route not found", "not_found")
	})

	return telemetry.Handler(r, "kioskctl-mock")
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to five seconds
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock api listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
