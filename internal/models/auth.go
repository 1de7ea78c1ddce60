package models

import "time"

// User represents a console user
type User struct {
	BaseModel   `yaml:",inline"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Role        string    `json:"role" yaml:"role"`
	HotelID     string    `json:"hotel_id,omitempty" yaml:"hotel_id,omitempty"`
	Status      string    `json:"status" yaml:"status"`
	LastLoginAt time.Time `json:"last_login_at" yaml:"last_login_at"`
}

// Field implements Record
func (u User) Field(key string) (interface{}, bool) {
	switch key {
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	case "hotel_id":
		return u.HotelID, true
	case "status":
		return u.Status, true
	case "last_login_at":
		return u.LastLoginAt, true
	}
	return u.field(key)
}

// CreateUserRequest is the payload submitted by `users create`
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	HotelID  string `json:"hotel_id,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Success      bool   `json:"success"`
	SessionToken string `json:"session_token"`
	TenantID     string `json:"tenant_id"`
	Message      string `json:"message"`
	Error        string `json:"error,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// PermissionFlags is the API shape of one module's permissions
type PermissionFlags struct {
	View   bool `json:"view" yaml:"view"`
	Create bool `json:"create" yaml:"create"`
	Edit   bool `json:"edit" yaml:"edit"`
	Delete bool `json:"delete" yaml:"delete"`
	Export bool `json:"export" yaml:"export"`
}

// Role is a named permission set, scoped to the admin console or a hotel panel
type Role struct {
	ID          string                     `json:"id" yaml:"id"`
	Name        string                     `json:"name" yaml:"name"`
	Scope       string                     `json:"scope" yaml:"scope"` // admin, hotel
	Description string                     `json:"description" yaml:"description"`
	UserCount   int                        `json:"user_count" yaml:"user_count"`
	Permissions map[string]PermissionFlags `json:"permissions" yaml:"permissions"`
}

// RecordID implements Record
func (r Role) RecordID() string {
	return r.ID
}

// Field implements Record
func (r Role) Field(key string) (interface{}, bool) {
	switch key {
	case "id":
		return r.ID, true
	case "name":
		return r.Name, true
	case "scope":
		return r.Scope, true
	case "description":
		return r.Description, true
	case "user_count":
		return r.UserCount, true
	}
	return nil, false
}
