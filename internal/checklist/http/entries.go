package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/pkg/fleetsdk"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"
)

// SubmitHandler accepts checklist submissions from authenticated actors.
type SubmitHandler struct {
	SubmissionService *service.SubmissionService
}

// ServeHTTP validates, normalizes and persists one checklist entry.
//
//	@Summary		Submit a checklist entry
//	@Description	Accepts a checklist payload, normalizes free-form field
//	@Description	values and records the entry against the current actor.
//	@Tags			entries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		map[string]interface{}	true	"Checklist payload"
//	@Success		200		{object}	fleetsdk.SubmitResponse
//	@Failure		400		{object}	fleetsdk.APIError
//	@Failure		401		{object}	fleetsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/entries [post]
func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.SessionFromContext(r.Context())
	if !ok {
		fleetsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		fleetsdk.ErrInvalidPayload.WriteError(w)
		return
	}

	id, err := h.SubmissionService.Submit(r.Context(), payload, actorFromClaims(claims))
	if err != nil {
		var missing *service.MissingFieldError
		if errors.As(err, &missing) {
			fleetsdk.ValidationError(missing.Error()).WriteError(w)
			return
		}
		fleetsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.SubmitResponse{Ok: true, ID: id})
}

// EntriesListHandler serves the admin audit listing.
type EntriesListHandler struct {
	AuditService *service.AuditService
}

// ServeHTTP returns recent checklist entries, newest first.
//
//	@Summary		List recent entries
//	@Description	Returns up to 300 of the most recent checklist entries.
//	@Description	Admin only.
//	@Tags			entries
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries to return (capped at 300)"
//	@Success		200		{array}		fleetsdk.EntryRecord
//	@Failure		401		{object}	fleetsdk.APIError
//	@Failure		403		{object}	fleetsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/entries [get]
func (h *EntriesListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	entries, err := h.AuditService.ListRecent(r.Context(), limit)
	if err != nil {
		slogx.FromContext(r.Context()).Error("entry listing failed", "error", err)
		fleetsdk.ErrServerError.WriteError(w)
		return
	}

	records := make([]fleetsdk.EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entryRecord(e))
	}
	httpx.WriteJSON(w, http.StatusOK, records)
}

func entryRecord(e domain.Entry) fleetsdk.EntryRecord {
	return fleetsdk.EntryRecord{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		Shift:     e.Shift,
		Mechanic:  e.Mechanic,
		VanID:     e.VanID,
		Odometer:  e.Odometer,
		FuelLevel: e.FuelLevel,

		InteriorClean:           e.Checks.InteriorClean,
		TrashRemoved:            e.Checks.TrashRemoved,
		ToolsSecured:            e.Checks.ToolsSecured,
		TiresOK:                 e.Checks.TiresOK,
		LightsOK:                e.Checks.LightsOK,
		FluidsOK:                e.Checks.FluidsOK,
		WindshieldClean:         e.Checks.WindshieldClean,
		WiperFluidOK:            e.Checks.WiperFluidOK,
		HornOK:                  e.Checks.HornOK,
		SeatbeltsOK:             e.Checks.SeatbeltsOK,
		FirstAidPresent:         e.Checks.FirstAidPresent,
		FireExtinguisherPresent: e.Checks.FireExtinguisherPresent,
		BackupCameraOK:          e.Checks.BackupCameraOK,
		RegistrationPresent:     e.Checks.RegistrationPresent,
		TurnSignalsOK:           e.Checks.TurnSignalsOK,
		BrakeLightsOK:           e.Checks.BrakeLightsOK,
		SpareTirePresent:        e.Checks.SpareTirePresent,
		JackPresent:             e.Checks.JackPresent,

		Notes: e.Notes,
	}
}
