package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"
)

// MissingFieldError reports the first required field absent from a
// submission. The message wording is part of the API contract.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing field: " + e.Field
}

// requiredFields is the fixed validation order; the first missing field wins.
var requiredFields = []string{"shift", "mechanic", "van_id"}

// SubmissionService validates, normalizes and persists one checklist entry
// per request.
type SubmissionService struct {
	Store store.Store
}

// Submit runs the submission pipeline over a decoded payload. On success it
// returns the id assigned to the new entry. Validation failures return a
// *MissingFieldError; anything else is a storage failure whose detail is
// logged here and must not reach the caller.
func (s *SubmissionService) Submit(ctx context.Context, payload map[string]any, actor domain.Actor) (int64, error) {
	for _, field := range requiredFields {
		if !requiredPresent(payload[field]) {
			return 0, &MissingFieldError{Field: field}
		}
	}

	entry := domain.Entry{
		CreatedAt: time.Now().UTC(),
		Shift:     stringValue(payload["shift"]),
		Mechanic:  stringValue(payload["mechanic"]),
		VanID:     stringValue(payload["van_id"]),
		Odometer:  NormalizeInt(payload["odometer"]),
		FuelLevel: NormalizeInt(payload["fuel_level"]),
		Notes:     strings.TrimSpace(stringValue(payload["notes"])),
	}
	for _, name := range domain.FlagNames {
		entry.Checks.Set(name, NormalizeFlag(payload[name]))
	}

	// The owning-user reference stays absent for administrator submissions.
	if actor.Kind == domain.ActorUser {
		entry.UserID = actor.UserID
	}

	id, err := s.Store.Entries().CreateEntry(ctx, entry)
	if err != nil {
		slogx.FromContext(ctx).Error("entry insert failed", "van_id", entry.VanID, "err", err)
		return 0, err
	}
	return id, nil
}

// NormalizeFlag applies the truthy-string rule shared by all eighteen
// inspection flags: "1", "true", "on" and "yes" (case-insensitive) are true,
// everything else, including absence, is false. Non-string values are
// stringified first so JSON true and 1 normalize to true.
func NormalizeFlag(v any) bool {
	if v == nil {
		return false
	}
	switch strings.ToLower(fmt.Sprint(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// NormalizeInt applies the lenient numeric rule: absent values, the empty
// string, the literal "null" and anything that fails integer parsing all
// normalize to absent. The swallowed parse failure is deliberate, inherited
// behavior: a garbled odometer reading must not lose the rest of the report.
func NormalizeInt(v any) *int64 {
	switch v := v.(type) {
	case nil:
		return nil
	case float64:
		// JSON numbers decode as float64; truncate toward zero.
		n := int64(v)
		return &n
	case string:
		s := strings.TrimSpace(v)
		if s == "" || s == "null" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		n, err := strconv.ParseInt(fmt.Sprint(v), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	}
}

// requiredPresent decides whether a required field carries a usable value.
// Absent values, the empty string, JSON false and JSON zero all count as
// missing; any non-empty string, including "0" and "false", is present.
func requiredPresent(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	}
	return true
}

// stringValue renders a payload value for the free-text fields. Absent and
// null values become the empty string.
func stringValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
