package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/pkg/fleetsdk"
	"github.com/tynanfleet/fleetcheck/pkg/httpx"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
	"github.com/tynanfleet/fleetcheck/pkg/slogx"
)

// AuthHandler serves credential endpoints: login, signup and logout.
type AuthHandler struct {
	SessionService *service.SessionService
	AccountService *service.AccountService
	Signer         *jwtx.Signer
}

// HandleLogin authenticates a username/password pair and establishes a
// session cookie.
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets the session cookie. The admin
//	@Description	identity takes precedence over any regular account with the
//	@Description	same username.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.CredentialsRequest	true	"Credentials"
//	@Success		200		{object}	fleetsdk.SessionResponse
//	@Failure		400		{object}	fleetsdk.APIError
//	@Failure		401		{object}	fleetsdk.APIError
//	@Router			/v1/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req fleetsdk.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidPayload.WriteError(w)
		return
	}

	actor, err := h.SessionService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fleetsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("login failed", "error", err)
		fleetsdk.ErrServerError.WriteError(w)
		return
	}

	h.establishSession(w, r, actor)
}

// HandleSignup registers a new account and signs the caller in.
//
//	@Summary		Sign up
//	@Description	Creates an account and establishes a session. The admin
//	@Description	username is reserved and cannot be registered.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.SignupRequest	true	"New account"
//	@Success		200		{object}	fleetsdk.SessionResponse
//	@Failure		400		{object}	fleetsdk.APIError
//	@Failure		409		{object}	fleetsdk.APIError
//	@Router			/v1/auth/signup [post]
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req fleetsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidPayload.WriteError(w)
		return
	}

	actor, err := h.AccountService.CreateAccount(r.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fleetsdk.ErrMissingSignupFields.WriteError(w)
		case errors.Is(err, service.ErrUsernameReserved),
			errors.Is(err, service.ErrUsernameTaken):
			fleetsdk.ErrUsernameUnavailable.WriteError(w)
		default:
			slogx.FromContext(r.Context()).Error("signup failed", "error", err)
			fleetsdk.ErrServerError.WriteError(w)
		}
		return
	}

	h.establishSession(w, r, actor)
}

// HandleLogout clears the session cookie unconditionally.
//
//	@Summary	Log out
//	@Tags		auth
//	@Success	204	"session cleared"
//	@Router		/v1/auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, actor domain.Actor) {
	token, err := h.Signer.Sign(actor.UserID.String(), actor.Name, actor.IsAdmin())
	if err != nil {
		slogx.FromContext(r.Context()).Error("session signing failed", "error", err)
		fleetsdk.ErrServerError.WriteError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Signer.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, fleetsdk.SessionResponse{
		Ok:    true,
		Actor: actorInfo(actor),
		Token: token,
	})
}

func actorInfo(a domain.Actor) fleetsdk.ActorInfo {
	return fleetsdk.ActorInfo{
		Kind:   string(a.Kind),
		UserID: a.UserID.String(),
		Name:   a.Name,
	}
}

// actorFromClaims rebuilds the request actor from verified session claims.
func actorFromClaims(claims jwtx.SessionClaims) domain.Actor {
	if claims.Admin {
		return domain.Actor{Kind: domain.ActorAdmin, Name: claims.Name}
	}
	return domain.Actor{
		Kind:   domain.ActorUser,
		UserID: idx.ID(claims.Subject),
		Name:   claims.Name,
	}
}
