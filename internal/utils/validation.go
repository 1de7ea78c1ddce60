package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest password the console will submit
const MinPasswordLength = 8

var (
	validName   = regexp.MustCompile(`^[\p{L}0-9\s\-_'&.]+$`)
	validSerial = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{3,31}$`)
	validKey    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email", "invalid email format")
	}

	return nil
}

// ValidatePassword validates a password
func ValidatePassword(password string) error {
	if password == "" {
		return NewValidationError("password", "password is required")
	}

	if len(password) < MinPasswordLength {
		return NewValidationError("password", "password must be at least 8 characters long")
	}

	return nil
}

// ValidatePasswordConfirmation checks the password and its confirmation together
func ValidatePasswordConfirmation(password, confirm string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return NewValidationError("confirm_password", "passwords do not match")
	}
	return nil
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fieldName, fieldName+" is required")
	}
	return nil
}

// ValidateName validates a display name field
func ValidateName(name, fieldName string) error {
	if err := ValidateRequired(name, fieldName); err != nil {
		return err
	}

	if len(name) > 255 {
		return NewValidationError(fieldName, fieldName+" must be less than 255 characters")
	}

	if !validName.MatchString(name) {
		return NewValidationError(fieldName, fieldName+" contains invalid characters")
	}

	return nil
}

// ValidateSerial validates a kiosk serial number (e.g. "KSK-2024-0001")
func ValidateSerial(serial string) error {
	if err := ValidateRequired(serial, "serial_number"); err != nil {
		return err
	}

	if !validSerial.MatchString(strings.ToUpper(serial)) {
		return NewValidationError("serial_number", "serial number must be 4-32 letters, digits or hyphens")
	}

	return nil
}

// ValidateKey validates a snake_case key such as a filter or module key
func ValidateKey(key, fieldName string) error {
	if !validKey.MatchString(key) {
		return NewValidationError(fieldName, fieldName+" must be lower snake_case")
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed values
func ValidateOneOf(value, fieldName string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(fieldName, fieldName+" must be one of: "+strings.Join(allowed, ", "))
}
