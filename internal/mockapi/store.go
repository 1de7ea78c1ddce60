// Package mockapi serves an in-memory fleet backend for demos and tests.
package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// Store holds every mock collection. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	hotels    []models.Hotel
	kiosks    []models.Kiosk
	users     []models.User
	passwords map[string]string
	roles     []models.Role
	invoices  []models.Invoice
	tickets   []models.Ticket
	audit     []models.AuditLogEntry
	sessions  map[string]string
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		now:       time.Now,
		passwords: map[string]string{},
		sessions:  map[string]string{},
	}
}

func indexOf[T models.Record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func notFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, utils.ErrNotFound)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// record appends an audit entry; callers hold the write lock
func (s *Store) record(actor, action, resource, id string) {
	s.audit = append(s.audit, models.AuditLogEntry{
		BaseModel:  models.BaseModel{ID: uuid.NewString(), CreatedAt: s.now().UTC()},
		Actor:      actor,
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		IP:         "127.0.0.1",
	})
}

// Hotels returns a snapshot of all hotels
func (s *Store) Hotels() []models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.hotels)
}

// Hotel finds one hotel
func (s *Store) Hotel(id string) (models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.hotels, id); i >= 0 {
		return s.hotels[i], nil
	}
	return models.Hotel{}, notFound("hotel", id)
}

// CreateHotel stores a new pending hotel
func (s *Store) CreateHotel(actor string, h models.Hotel) (models.Hotel, error) {
	if err := utils.ValidateName(h.Name, "name"); err != nil {
		return models.Hotel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = uuid.NewString()
	h.CreatedAt = s.now().UTC()
	if h.Status == "" {
		h.Status = "pending"
	}
	h.KioskCount = 0
	s.hotels = append(s.hotels, h)
	s.record(actor, "create", "hotel", h.ID)
	return h, nil
}

// SetHotelStatus moves a hotel to active or suspended
func (s *Store) SetHotelStatus(actor, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.hotels, id)
	if i < 0 {
		return notFound("hotel", id)
	}
	s.hotels[i].Status = status
	s.record(actor, status, "hotel", id)
	return nil
}

// DeleteHotel removes a hotel; its kiosks become unassigned
func (s *Store) DeleteHotel(actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.hotels, id)
	if i < 0 {
		return notFound("hotel", id)
	}
	s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
	for k := range s.kiosks {
		if s.kiosks[k].HotelID == id {
			s.kiosks[k].HotelID = ""
		}
	}
	s.record(actor, "delete", "hotel", id)
	return nil
}

// Kiosks returns a snapshot of all kiosks
func (s *Store) Kiosks() []models.Kiosk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.kiosks)
}

// Kiosk finds one kiosk
func (s *Store) Kiosk(id string) (models.Kiosk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.kiosks, id); i >= 0 {
		return s.kiosks[i], nil
	}
	return models.Kiosk{}, notFound("kiosk", id)
}

// CreateKiosk registers a kiosk, optionally assigned to a hotel
func (s *Store) CreateKiosk(actor string, k models.Kiosk) (models.Kiosk, error) {
	if err := utils.ValidateSerial(k.SerialNumber); err != nil {
		return models.Kiosk{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.kiosks {
		if strings.EqualFold(existing.SerialNumber, k.SerialNumber) {
			return models.Kiosk{}, utils.NewValidationError("serial_number", "serial number is already registered")
		}
	}
	if k.HotelID != "" {
		h := indexOf(s.hotels, k.HotelID)
		if h < 0 {
			return models.Kiosk{}, notFound("hotel", k.HotelID)
		}
		s.hotels[h].KioskCount++
	}
	k.ID = uuid.NewString()
	k.SerialNumber = strings.ToUpper(k.SerialNumber)
	k.CreatedAt = s.now().UTC()
	k.Status = models.KioskOffline.String()
	s.kiosks = append(s.kiosks, k)
	s.record(actor, "create", "kiosk", k.ID)
	return k, nil
}

// AssignKiosk moves a kiosk to a hotel and keeps kiosk counts in step
func (s *Store) AssignKiosk(actor, id, hotelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.kiosks, id)
	if i < 0 {
		return notFound("kiosk", id)
	}
	to := indexOf(s.hotels, hotelID)
	if to < 0 {
		return notFound("hotel", hotelID)
	}
	if from := indexOf(s.hotels, s.kiosks[i].HotelID); from >= 0 {
		s.hotels[from].KioskCount--
	}
	s.hotels[to].KioskCount++
	s.kiosks[i].HotelID = hotelID
	s.record(actor, "assign", "kiosk", id)
	return nil
}

// RestartKiosk brings a kiosk back online
func (s *Store) RestartKiosk(actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.kiosks, id)
	if i < 0 {
		return notFound("kiosk", id)
	}
	s.kiosks[i].Status = models.KioskOnline.String()
	s.kiosks[i].LastSeen = s.now().UTC()
	s.record(actor, "restart", "kiosk", id)
	return nil
}

// DeleteKiosk decommissions a kiosk
func (s *Store) DeleteKiosk(actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.kiosks, id)
	if i < 0 {
		return notFound("kiosk", id)
	}
	if h := indexOf(s.hotels, s.kiosks[i].HotelID); h >= 0 {
		s.hotels[h].KioskCount--
	}
	s.kiosks = append(s.kiosks[:i], s.kiosks[i+1:]...)
	s.record(actor, "delete", "kiosk", id)
	return nil
}

// Users returns a snapshot of all users
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.users)
}

// CreateUser validates and stores a new active user
func (s *Store) CreateUser(actor string, req models.CreateUserRequest) (models.User, error) {
	errs := utils.NewMultiError()
	errs.Add(utils.ValidateRequired(req.Name, "name"))
	errs.Add(utils.ValidateEmail(req.Email))
	errs.Add(utils.ValidatePassword(req.Password))
	errs.Add(utils.ValidateRequired(req.Role, "role"))
	if err := errs.ErrorOrNil(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, req.Email) {
			return models.User{}, utils.NewValidationError("email", "email is already in use")
		}
	}
	u := models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: s.now().UTC()},
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		HotelID:   req.HotelID,
		Status:    "active",
	}
	s.users = append(s.users, u)
	s.passwords[strings.ToLower(u.Email)] = req.Password
	s.record(actor, "create", "user", u.ID)
	return u, nil
}

// SetUserStatus moves a user to active or suspended
func (s *Store) SetUserStatus(actor, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.users, id)
	if i < 0 {
		return notFound("user", id)
	}
	s.users[i].Status = status
	s.record(actor, status, "user", id)
	return nil
}

// DeleteUser removes a user and their password
func (s *Store) DeleteUser(actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.users, id)
	if i < 0 {
		return notFound("user", id)
	}
	delete(s.passwords, strings.ToLower(s.users[i].Email))
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.record(actor, "delete", "user", id)
	return nil
}

// Roles returns a snapshot of all roles
func (s *Store) Roles() []models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.roles)
}

// Role finds one role
func (s *Store) Role(id string) (models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.roles, id); i >= 0 {
		return s.roles[i], nil
	}
	return models.Role{}, notFound("role", id)
}

// SaveRole creates a role without id and replaces one with an id
func (s *Store) SaveRole(actor string, role models.Role) (models.Role, error) {
	if err := utils.ValidateRequired(role.Name, "name"); err != nil {
		return models.Role{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if role.ID == "" {
		role.ID = uuid.NewString()
		s.roles = append(s.roles, role)
		s.record(actor, "create", "role", role.ID)
		return role, nil
	}
	i := indexOf(s.roles, role.ID)
	if i < 0 {
		return models.Role{}, notFound("role", role.ID)
	}
	role.UserCount = s.roles[i].UserCount
	s.roles[i] = role
	s.record(actor, "update", "role", role.ID)
	return role, nil
}

// Invoices returns a snapshot of all invoices
func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.invoices)
}

// Tickets returns a snapshot of all tickets
func (s *Store) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tickets)
}

// Ticket finds one ticket
func (s *Store) Ticket(id string) (models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.tickets, id); i >= 0 {
		return s.tickets[i], nil
	}
	return models.Ticket{}, notFound("ticket", id)
}

// CloseTicket marks a ticket closed
func (s *Store) CloseTicket(actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.tickets, id)
	if i < 0 {
		return notFound("ticket", id)
	}
	s.tickets[i].Status = "closed"
	s.record(actor, "close", "ticket", id)
	return nil
}

// Audit returns a snapshot of the audit log
func (s *Store) Audit() []models.AuditLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.audit)
}

// Login checks credentials and opens a session
func (s *Store) Login(email, password string) (string, models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.passwords[strings.ToLower(email)]
	if !ok || stored != password {
		return "", models.User{}, utils.NewAPIError(401, "invalid email or password", "invalid_credentials")
	}
	var user models.User
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			if s.users[i].Status == "suspended" {
				return "", models.User{}, utils.NewAPIError(403, "user is suspended", "suspended")
			}
			s.users[i].LastLoginAt = s.now().UTC()
			user = s.users[i]
		}
	}
	token := uuid.NewString()
	s.sessions[token] = user.Email
	s.record(user.Email, "login", "session", user.ID)
	return token, user, nil
}

// Logout closes a session
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SessionUser returns the email behind a session token
func (s *Store) SessionUser(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.sessions[token]
	return email, ok
}
