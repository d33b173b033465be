// Package validation holds the field-level rules shared by registration,
// admin user creation, store creation and rating submission.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors maps a field name to its first violation message.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// User validates the fields of a registration or admin create-user request.
func User(name, email, password, address string) Errors {
	errs := Errors{}
	validateName(errs, name)
	validateEmail(errs, email)
	validatePassword(errs, "password", password)
	validateAddress(errs, address)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Store validates the fields of a create-store request.
func Store(name, email, address string) Errors {
	errs := Errors{}
	if n := utf8.RuneCountInString(name); n < 20 {
		errs["name"] = "Store name must be at least 20 characters"
	} else if n > 60 {
		errs["name"] = "Store name must not exceed 60 characters"
	}
	validateEmail(errs, email)
	validateAddress(errs, address)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Rating validates a rating submission. The value check runs before any
// store lookup, so malformed input never reaches the database.
func Rating(storeID uint, value int) Errors {
	errs := Errors{}
	if storeID == 0 {
		errs["storeId"] = "Store id must be a positive integer"
	}
	if value < 1 {
		errs["rating"] = "Rating must be at least 1"
	} else if value > 5 {
		errs["rating"] = "Rating must not exceed 5"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Login validates a login request.
func Login(email, password string) Errors {
	errs := Errors{}
	validateEmail(errs, email)
	if password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// PasswordUpdate validates a password change request.
func PasswordUpdate(current, next string) Errors {
	errs := Errors{}
	if current == "" {
		errs["currentPassword"] = "Current password is required"
	}
	validatePassword(errs, "newPassword", next)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateName(errs Errors, name string) {
	if n := utf8.RuneCountInString(name); n < 20 {
		errs["name"] = "Name must be at least 20 characters"
	} else if n > 60 {
		errs["name"] = "Name must not exceed 60 characters"
	}
}

func validateEmail(errs Errors, email string) {
	if !emailPattern.MatchString(email) {
		errs["email"] = "Invalid email format"
	}
}

func validateAddress(errs Errors, address string) {
	if utf8.RuneCountInString(address) > 400 {
		errs["address"] = "Address must not exceed 400 characters"
	}
}

func validatePassword(errs Errors, field, password string) {
	n := utf8.RuneCountInString(password)
	switch {
	case n < 8:
		errs[field] = "Password must be at least 8 characters"
		return
	case n > 16:
		errs[field] = "Password must not exceed 16 characters"
		return
	}
	hasUpper := strings.IndexFunc(password, unicode.IsUpper) >= 0
	hasSpecial := strings.ContainsAny(password, passwordSpecials)
	if !hasUpper || !hasSpecial {
		errs[field] = "Password must contain at least one uppercase letter and one special character"
	}
}
