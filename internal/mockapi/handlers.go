package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hostkiosk/kioskctl/internal/listing"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Total   int         `json:"total,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, envelope{Success: false, Error: message, Code: code})
}

// respondErr maps store errors to HTTP statuses
func respondErr(w http.ResponseWriter, err error) {
	var apiErr *utils.APIError
	switch {
	case errors.Is(err, utils.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error(), "not_found")
	case errors.As(err, &apiErr):
		respondError(w, apiErr.StatusCode, apiErr.Message, apiErr.Code)
	case utils.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error(), "validation")
	default:
		respondError(w, http.StatusInternalServerError, err.Error(), "internal")
	}
}

// queryFromRequest reads ?search= and treats every other parameter as a
// comma-separated filter
func queryFromRequest[T models.Searchable](r *http.Request) listing.Query {
	q := listing.Query{Searchable: models.SearchFieldsOf[T](), Filters: listing.FilterState{}}
	for key, values := range r.URL.Query() {
		if key == "search" {
			q.Search = strings.Join(values, " ")
			continue
		}
		for _, v := range values {
			q.Filters.Set(key, append(q.Filters[key], strings.Split(v, ",")...)...)
		}
	}
	return q
}

func listHandler[T models.Searchable](all func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows := listing.Filter(all(), queryFromRequest[T](r))
		respondJSON(w, http.StatusOK, envelope{Success: true, Data: rows, Total: len(rows)})
	}
}

func getHandler[T any](find func(id string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := find(chi.URLParam(r, "id"))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondOK(w, item)
	}
}

func (s *Server) mutation(fn func(actor, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(actor(r), chi.URLParam(r, "id")); err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, envelope{Success: true})
	}
}

func (s *Server) hotelStatus(status string) http.HandlerFunc {
	return s.mutation(func(actor, id string) error {
		return s.store.SetHotelStatus(actor, id, status)
	})
}

func (s *Server) userStatus(status string) http.HandlerFunc {
	return s.mutation(func(actor, id string) error {
		return s.store.SetUserStatus(actor, id, status)
	})
}

func decode(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return false
	}
	return true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	token, user, err := s.store.Login(req.Email, req.Password)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, models.LoginResponse{
		Success:      true,
		SessionToken: token,
		TenantID:     DemoTenant,
		User:         &user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.store.Logout(bearer(r))
	respondJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) handleCreateHotel(w http.ResponseWriter, r *http.Request) {
	var h models.Hotel
	if !decode(w, r, &h) {
		return
	}
	created, err := s.store.CreateHotel(actor(r), h)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, created)
}

func (s *Server) handleCreateKiosk(w http.ResponseWriter, r *http.Request) {
	var k models.Kiosk
	if !decode(w, r, &k) {
		return
	}
	created, err := s.store.CreateKiosk(actor(r), k)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, created)
}

func (s *Server) handleAssignKiosk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HotelID string `json:"hotel_id"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := s.store.AssignKiosk(actor(r), chi.URLParam(r, "id"), body.HotelID); err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := s.store.CreateUser(actor(r), req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, user)
}

func (s *Server) handleSaveRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if !decode(w, r, &role) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		role.ID = id
	}
	saved, err := s.store.SaveRole(actor(r), role)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, saved)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	t, err := models.ParseReportType(chi.URLParam(r, "type"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respondOK(w, s.store.Report(t))
}
