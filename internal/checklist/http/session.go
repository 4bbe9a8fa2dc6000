package http

import (
	"net/http"

	"github.com/tynanfleet/fleetcheck/pkg/fleetsdk"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
)

// SessionHandler reports who the current session belongs to.
//
//	@Summary		Current session
//	@Description	Returns the authenticated actor for the presented session.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	fleetsdk.SessionResponse
//	@Failure		401	{object}	fleetsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/session [get]
func SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.SessionFromContext(r.Context())
		if !ok {
			fleetsdk.ErrUnauthorized.WriteError(w)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, fleetsdk.SessionResponse{
			Ok:    true,
			Actor: actorInfo(actorFromClaims(claims)),
		})
	}
}

// VansHandler returns the configured van roster.
//
//	@Summary		Van roster
//	@Description	Lists the van identifiers available for checklist entries.
//	@Tags			fleet
//	@Produce		json
//	@Success		200	{object}	fleetsdk.VansResponse
//	@Failure		401	{object}	fleetsdk.APIError
//	@Security		SessionCookie
//	@Router			/v1/vans [get]
func VansHandler(vans []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.VansResponse{Vans: vans})
	}
}

// FormBootstrapHandler serves the checklist form bootstrap payload for the
// root page. Unauthenticated visitors never reach it; the route gate
// redirects them to the sign-in page.
//
//	@Summary		Form bootstrap
//	@Description	Returns the van roster and current actor for the checklist form.
//	@Tags			fleet
//	@Produce		json
//	@Success		200	{object}	fleetsdk.FormBootstrapResponse
//	@Failure		303	"redirect to sign-in"
//	@Security		SessionCookie
//	@Router			/ [get]
func FormBootstrapHandler(vans []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.SessionFromContext(r.Context())
		if !ok {
			fleetsdk.ErrUnauthorized.WriteError(w)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, fleetsdk.FormBootstrapResponse{
			Vans:  vans,
			Actor: actorInfo(actorFromClaims(claims)),
		})
	}
}
