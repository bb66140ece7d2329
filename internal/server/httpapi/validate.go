package httpapi

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

// fieldErrors collects per-field validation messages.
type fieldErrors map[string]string

func (fe fieldErrors) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		fe[field] = "is required"
		return false
	}
	return true
}

func (fe fieldErrors) runes(field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(value)
	switch {
	case minLen > 0 && n < minLen:
		fe[field] = "must be at least " + strconv.Itoa(minLen) + " characters"
	case maxLen > 0 && n > maxLen:
		fe[field] = "must be at most " + strconv.Itoa(maxLen) + " characters"
	}
}

func (fe fieldErrors) email(field, value string) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		fe[field] = "must be a valid email address"
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() fieldErrors {
	fe := fieldErrors{}
	if fe.required("username", r.Username) {
		fe.runes("username", r.Username, 3, 50)
	}
	if fe.required("email", r.Email) {
		fe.email("email", r.Email)
	}
	if fe.required("password", r.Password) {
		fe.runes("password", r.Password, 6, 0)
	}
	return fe
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() fieldErrors {
	fe := fieldErrors{}
	fe.required("email", r.Email)
	fe.required("password", r.Password)
	return fe
}

// entryRequest is the body of both create and update; update replaces all
// three fields.
type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (r entryRequest) validate() fieldErrors {
	fe := fieldErrors{}
	if fe.required("title", r.Title) {
		fe.runes("title", r.Title, 0, 200)
	}
	fe.required("content", r.Content)
	fe.runes("mood", r.Mood, 0, 50)
	return fe
}
