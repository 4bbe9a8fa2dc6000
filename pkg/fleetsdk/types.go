// Package fleetsdk holds the wire types of the FleetCheck HTTP API and a Go
// client for it. The server imports the types so handler responses and client
// expectations can never drift apart.
package fleetsdk

// CredentialsRequest is the sign-in request body.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the account-creation request body.
type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ActorInfo describes the authenticated identity of a session.
type ActorInfo struct {
	// Kind is "admin" or "user".
	Kind string `json:"kind"`

	// UserID is the user's id; empty for the administrator.
	UserID string `json:"user_id,omitempty"`

	// Name is the display name.
	Name string `json:"name"`
}

// SessionResponse is returned by login, signup and the session probe. The
// token is also set as an HttpOnly cookie; the body copy serves bearer-header
// clients.
type SessionResponse struct {
	Ok    bool      `json:"ok"`
	Actor ActorInfo `json:"actor"`
	Token string    `json:"token,omitempty"`
}

// SubmitResponse acknowledges a persisted checklist entry.
type SubmitResponse struct {
	Ok bool  `json:"ok"`
	ID int64 `json:"id"`
}

// EntryRecord is one checklist entry as serialized for the audit listing.
// Every inspection flag is always present, even when false, and notes is
// never absent.
type EntryRecord struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"` // ISO-8601 UTC

	Shift     string `json:"shift"`
	Mechanic  string `json:"mechanic"`
	VanID     string `json:"van_id"`
	Odometer  *int64 `json:"odometer"`
	FuelLevel *int64 `json:"fuel_level"`

	InteriorClean bool `json:"interior_clean"`
	TrashRemoved  bool `json:"trash_removed"`
	ToolsSecured  bool `json:"tools_secured"`
	TiresOK       bool `json:"tires_ok"`
	LightsOK      bool `json:"lights_ok"`
	FluidsOK      bool `json:"fluids_ok"`

	WindshieldClean         bool `json:"windshield_clean"`
	WiperFluidOK            bool `json:"wiper_fluid_ok"`
	HornOK                  bool `json:"horn_ok"`
	SeatbeltsOK             bool `json:"seatbelts_ok"`
	FirstAidPresent         bool `json:"first_aid_present"`
	FireExtinguisherPresent bool `json:"fire_extinguisher_present"`
	BackupCameraOK          bool `json:"backup_camera_ok"`
	RegistrationPresent     bool `json:"registration_present"`
	TurnSignalsOK           bool `json:"turn_signals_ok"`
	BrakeLightsOK           bool `json:"brake_lights_ok"`
	SpareTirePresent        bool `json:"spare_tire_present"`
	JackPresent             bool `json:"jack_present"`

	Notes string `json:"notes"`
}

// VansResponse carries the vehicle roster as selectable options.
type VansResponse struct {
	Vans []string `json:"vans"`
}

// FormBootstrapResponse backs the interactive index: everything the client
// app needs to render the submission form.
type FormBootstrapResponse struct {
	Vans  []string  `json:"vans"`
	Actor ActorInfo `json:"actor"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
