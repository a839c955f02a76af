// Package validation checks inbound notification payloads before any state
// mutation is attempted. A payload either yields a fully typed candidate list
// or a ValidationError carrying every field-level problem found.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"walletsync/internal/services/ledger"
)

// ValidationError aggregates every field-level message for a rejected payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Fields, ", ")
}

type transactionPayload struct {
	ID          string      `json:"id" validate:"required"`
	CreatedAt   string      `json:"created_at" validate:"required"`
	UpdatedAt   string      `json:"updated_at" validate:"required"`
	Description string      `json:"description"`
	Type        string      `json:"type" validate:"required,oneof=deposit withdraw payment"`
	TypeMethod  string      `json:"type_method"`
	State       string      `json:"state"`
	UserID      string      `json:"user_id" validate:"required"`
	UserName    string      `json:"user_name"`
	Amount      json.Number `json:"amount" validate:"required"`
	Currency    string      `json:"currency" validate:"required"`
	DebitCredit string      `json:"debit_credit" validate:"required,oneof=credit debit"`
}

type notificationPayload struct {
	Transactions []transactionPayload `json:"transactions" validate:"required,min=1,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseNotification validates the raw payload and returns the typed candidate
// list. Validation is exhaustive: all problems are collected before failing,
// and nothing touches a store until this has succeeded.
func ParseNotification(body []byte) ([]ledger.Candidate, error) {
	var payload notificationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ValidationError{Fields: []string{"payload is not valid JSON"}}
	}

	var fields []string
	if err := validate.Struct(payload); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, &ValidationError{Fields: []string{err.Error()}}
		}
		for _, fe := range verrs {
			fields = append(fields, messageFor(fe))
		}
	}

	candidates := make([]ledger.Candidate, 0, len(payload.Transactions))
	for i, tx := range payload.Transactions {
		cand, errs := tx.toCandidate(i)
		fields = append(fields, errs...)
		candidates = append(candidates, cand)
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return candidates, nil
}

func (p transactionPayload) toCandidate(index int) (ledger.Candidate, []string) {
	var errs []string

	createdAt, err := parseTimestamp(p.CreatedAt)
	if err != nil && p.CreatedAt != "" {
		errs = append(errs, fmt.Sprintf("transactions[%d].created_at is not a valid date-time", index))
	}
	updatedAt, err2 := parseTimestamp(p.UpdatedAt)
	if err2 != nil && p.UpdatedAt != "" {
		errs = append(errs, fmt.Sprintf("transactions[%d].updated_at is not a valid date-time", index))
	}

	var amount float64
	if p.Amount != "" {
		amount, err = p.Amount.Float64()
		if err != nil {
			errs = append(errs, fmt.Sprintf("transactions[%d].amount must be a number", index))
		} else if amount <= 0 {
			errs = append(errs, fmt.Sprintf("transactions[%d].amount must be a positive number", index))
		}
	}

	return ledger.Candidate{
		ID:          p.ID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Description: p.Description,
		Type:        p.Type,
		TypeMethod:  p.TypeMethod,
		State:       p.State,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Amount:      amount,
		Currency:    p.Currency,
		DebitCredit: p.DebitCredit,
	}, errs
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func messageFor(fe validator.FieldError) string {
	path := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "at least one transaction is required"
		}
		return path + " is too short"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}

// fieldPath strips the struct name prefix from the namespace, leaving e.g.
// "transactions[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
