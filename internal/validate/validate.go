// Package validate holds the explicit input checks that run before any service logic.
// Each function either returns a typed value or an apperr validation error with
// per-field details.
package validate

import (
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/clothing_store/internal/apperr"
	"github.com/Skotchmaster/clothing_store/internal/models"
)

const DateLayout = "2006-01-02"

type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperr.Validation("Validation failed", e)
}

func ID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperr.Validation("Invalid id format", map[string]string{field: "Invalid id format"})
	}
	return id, nil
}

func Gender(raw string) (models.Gender, bool) {
	g := models.Gender(strings.TrimSpace(raw))
	return g, slices.Contains(models.Genders, g)
}

func GenderMessage() string {
	names := make([]string, len(models.Genders))
	for i, g := range models.Genders {
		names[i] = string(g)
	}
	return "Gender must be one of: " + strings.Join(names, ", ")
}

func SizeMessage() string {
	return "Size must be one of: " + strings.Join(models.Sizes, ", ")
}

// Sizes flattens repeated and comma-delimited size values, dropping blanks and duplicates.
func Sizes(values []string) ([]string, bool) {
	var out []string
	for _, v := range values {
		for _, token := range strings.Split(v, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if !models.IsSize(token) {
				return nil, false
			}
			if !slices.Contains(out, token) {
				out = append(out, token)
			}
		}
	}
	return out, true
}

// NonNegative parses an optional number. Empty input yields nil.
func NonNegative(raw string) (*float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

func Date(raw string) bool {
	_, err := time.Parse(DateLayout, raw)
	return err == nil
}

func minLen(errs Errors, field, value string, n int) {
	if len([]rune(strings.TrimSpace(value))) < n {
		errs.Add(field, fmt.Sprintf("%s should have at least %d characters", field, n))
	}
}

func Email(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Address == raw
}
