package domain

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field name to a user-facing message. An empty
// map means the value passed validation.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

func digitCount(phone string) int {
	n := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func (s SenderInfo) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(s.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(s.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if digitCount(s.Phone) < 10 {
		errs["phone"] = "Enter a valid phone number"
	}
	return errs
}

func (r RecipientInfo) Validate() FieldErrors {
	errs := SenderInfo{Email: r.Email, FullName: r.FullName, Phone: r.Phone}.Validate()
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "Delivery address is required"
	}
	if strings.TrimSpace(r.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(r.State) == "" {
		errs["state"] = "State is required"
	}
	return errs
}
