package domain

import (
	"time"

	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

// Shift phases accepted on the submission form.
const (
	ShiftStart = "Start"
	ShiftEnd   = "End"
)

// Entry is one persisted vehicle-inspection submission. Entries are created
// exactly once and never mutated afterwards. UserID is zero when the entry was
// submitted under the administrator identity.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	UserID    idx.ID

	Shift     string
	Mechanic  string
	VanID     string
	Odometer  *int64
	FuelLevel *int64 // conceptually 0-100, not enforced

	Checks Checks
	Notes  string
}

// Checks holds the eighteen independent boolean inspection flags.
type Checks struct {
	InteriorClean bool
	TrashRemoved  bool
	ToolsSecured  bool
	TiresOK       bool
	LightsOK      bool
	FluidsOK      bool

	WindshieldClean         bool
	WiperFluidOK            bool
	HornOK                  bool
	SeatbeltsOK             bool
	FirstAidPresent         bool
	FireExtinguisherPresent bool
	BackupCameraOK          bool
	RegistrationPresent     bool
	TurnSignalsOK           bool
	BrakeLightsOK           bool
	SpareTirePresent        bool
	JackPresent             bool
}

// FlagNames is the canonical ordered list of inspection flag names. It is the
// single source of truth shared by payload normalization, the wire format and
// the additive schema guard, so adding a flag means adding it here, to Checks
// and to the Set/Get switches below.
var FlagNames = []string{
	"interior_clean",
	"trash_removed",
	"tools_secured",
	"tires_ok",
	"lights_ok",
	"fluids_ok",
	"windshield_clean",
	"wiper_fluid_ok",
	"horn_ok",
	"seatbelts_ok",
	"first_aid_present",
	"fire_extinguisher_present",
	"backup_camera_ok",
	"registration_present",
	"turn_signals_ok",
	"brake_lights_ok",
	"spare_tire_present",
	"jack_present",
}

// Set assigns the named flag. It reports false for unknown names so callers
// can ignore stray payload keys without reflection.
func (c *Checks) Set(name string, v bool) bool {
	switch name {
	case "interior_clean":
		c.InteriorClean = v
	case "trash_removed":
		c.TrashRemoved = v
	case "tools_secured":
		c.ToolsSecured = v
	case "tires_ok":
		c.TiresOK = v
	case "lights_ok":
		c.LightsOK = v
	case "fluids_ok":
		c.FluidsOK = v
	case "windshield_clean":
		c.WindshieldClean = v
	case "wiper_fluid_ok":
		c.WiperFluidOK = v
	case "horn_ok":
		c.HornOK = v
	case "seatbelts_ok":
		c.SeatbeltsOK = v
	case "first_aid_present":
		c.FirstAidPresent = v
	case "fire_extinguisher_present":
		c.FireExtinguisherPresent = v
	case "backup_camera_ok":
		c.BackupCameraOK = v
	case "registration_present":
		c.RegistrationPresent = v
	case "turn_signals_ok":
		c.TurnSignalsOK = v
	case "brake_lights_ok":
		c.BrakeLightsOK = v
	case "spare_tire_present":
		c.SpareTirePresent = v
	case "jack_present":
		c.JackPresent = v
	default:
		return false
	}
	return true
}

// Get returns the named flag, false for unknown names.
func (c Checks) Get(name string) bool {
	switch name {
	case "interior_clean":
		return c.InteriorClean
	case "trash_removed":
		return c.TrashRemoved
	case "tools_secured":
		return c.ToolsSecured
	case "tires_ok":
		return c.TiresOK
	case "lights_ok":
		return c.LightsOK
	case "fluids_ok":
		return c.FluidsOK
	case "windshield_clean":
		return c.WindshieldClean
	case "wiper_fluid_ok":
		return c.WiperFluidOK
	case "horn_ok":
		return c.HornOK
	case "seatbelts_ok":
		return c.SeatbeltsOK
	case "first_aid_present":
		return c.FirstAidPresent
	case "fire_extinguisher_present":
		return c.FireExtinguisherPresent
	case "backup_camera_ok":
		return c.BackupCameraOK
	case "registration_present":
		return c.RegistrationPresent
	case "turn_signals_ok":
		return c.TurnSignalsOK
	case "brake_lights_ok":
		return c.BrakeLightsOK
	case "spare_tire_present":
		return c.SpareTirePresent
	case "jack_present":
		return c.JackPresent
	}
	return false
}
