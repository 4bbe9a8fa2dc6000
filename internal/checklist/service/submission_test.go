package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/service"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

func TestNormalizeFlag(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"absent", nil, false},
		{"string one", "1", true},
		{"string true", "true", true},
		{"form checkbox on", "on", true},
		{"yes", "yes", true},
		{"uppercase TRUE", "TRUE", true},
		{"mixed case Yes", "Yes", true},
		{"json true", true, true},
		{"json false", false, false},
		{"json number one", float64(1), true},
		{"json number zero", float64(0), false},
		{"string off", "off", false},
		{"string no", "no", false},
		{"empty string", "", false},
		{"garbage", "maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, service.NormalizeFlag(tt.in))
		})
	}
}

func TestNormalizeInt(t *testing.T) {
	ptr := func(n int64) *int64 { return &n }

	tests := []struct {
		name string
		in   any
		want *int64
	}{
		{"absent", nil, nil},
		{"empty string", "", nil},
		{"whitespace", "   ", nil},
		{"literal null", "null", nil},
		{"numeric string", "55", ptr(55)},
		{"padded numeric string", " 120345 ", ptr(120345)},
		{"negative string", "-3", ptr(-3)},
		{"json number", float64(88), ptr(88)},
		{"json fraction truncates", float64(55.9), ptr(55)},
		{"garbage string", "full-ish", nil},
		{"decimal string", "55.5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.NormalizeInt(tt.in)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.want, *got)
		})
	}
}

func TestSubmitMissingFields(t *testing.T) {
	svc := &service.SubmissionService{Store: newTestStore(t)}
	actor := domain.Actor{Kind: domain.ActorUser, UserID: idx.New(), Name: "Jordan"}

	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"empty payload", map[string]any{}, "shift"},
		{"shift blank", map[string]any{"shift": "", "mechanic": "J", "van_id": "179"}, "shift"},
		{"mechanic absent", map[string]any{"shift": "Start", "van_id": "179"}, "mechanic"},
		{"van absent", map[string]any{"shift": "Start", "mechanic": "J"}, "van_id"},
		{"first missing wins", map[string]any{"mechanic": "J"}, "shift"},
		{"json false counts as missing", map[string]any{"shift": false, "mechanic": "J", "van_id": "179"}, "shift"},
		{"json zero counts as missing", map[string]any{"shift": "Start", "mechanic": float64(0), "van_id": "179"}, "mechanic"},
		{"json null counts as missing", map[string]any{"shift": "Start", "mechanic": "J", "van_id": nil}, "van_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.payload, actor)
			var missing *service.MissingFieldError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tt.field, missing.Field)
			require.EqualError(t, err, "Missing field: "+tt.field)
		})
	}
}

func TestSubmitPipeline(t *testing.T) {
	st := newTestStore(t)
	svc := &service.SubmissionService{Store: st}
	userID := idx.New()
	actor := domain.Actor{Kind: domain.ActorUser, UserID: userID, Name: "Jordan"}

	payload := map[string]any{
		"shift":      "Start",
		"mechanic":   "Jordan",
		"van_id":     "179",
		"odometer":   "",
		"fuel_level": "55",
		"tires_ok":   "on",
		"horn_ok":    true,
		"lights_ok":  "no",
		"notes":      "  brakes feel soft  ",
	}

	id, err := svc.Submit(context.Background(), payload, actor)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := st.Entries().ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	e := got[0]
	require.Equal(t, id, e.ID)
	require.Equal(t, userID, e.UserID)
	require.Equal(t, "Start", e.Shift)
	require.Equal(t, "Jordan", e.Mechanic)
	require.Equal(t, "179", e.VanID)
	require.Nil(t, e.Odometer)
	require.NotNil(t, e.FuelLevel)
	require.EqualValues(t, 55, *e.FuelLevel)
	require.True(t, e.Checks.TiresOK)
	require.True(t, e.Checks.HornOK)
	require.False(t, e.Checks.LightsOK)
	require.False(t, e.Checks.InteriorClean)
	require.Equal(t, "brakes feel soft", e.Notes)
}

func TestSubmitAdminEntryHasNoOwner(t *testing.T) {
	st := newTestStore(t)
	svc := &service.SubmissionService{Store: st}

	payload := map[string]any{"shift": "End", "mechanic": "Administrator", "van_id": "131"}
	_, err := svc.Submit(context.Background(), payload, domain.Actor{Kind: domain.ActorAdmin, Name: "Administrator"})
	require.NoError(t, err)

	got, err := st.Entries().ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].UserID.IsZero())
}

func TestAuditListClamp(t *testing.T) {
	st := newTestStore(t)
	submit := &service.SubmissionService{Store: st}
	audit := &service.AuditService{Store: st}
	actor := domain.Actor{Kind: domain.ActorAdmin, Name: "Administrator"}

	for i := 0; i < 5; i++ {
		_, err := submit.Submit(context.Background(), map[string]any{
			"shift": "Start", "mechanic": "J", "van_id": "179",
		}, actor)
		require.NoError(t, err)
	}

	t.Run("zero clamps to cap", func(t *testing.T) {
		got, err := audit.ListRecent(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, got, 5)
	})

	t.Run("negative clamps to cap", func(t *testing.T) {
		got, err := audit.ListRecent(context.Background(), -10)
		require.NoError(t, err)
		require.Len(t, got, 5)
	})

	t.Run("over cap clamps to cap", func(t *testing.T) {
		got, err := audit.ListRecent(context.Background(), service.MaxListLimit+50)
		require.NoError(t, err)
		require.Len(t, got, 5)
	})

	t.Run("small limit honoured", func(t *testing.T) {
		got, err := audit.ListRecent(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestAuditListCapWithLargeDataset(t *testing.T) {
	st := newTestStore(t)
	audit := &service.AuditService{Store: st}

	const total = service.MaxListLimit + 5

	base := time.Now().UTC().Truncate(time.Second)
	ids := make([]int64, 0, total)
	for i := 0; i < total; i++ {
		id, err := st.Entries().CreateEntry(context.Background(), domain.Entry{
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Shift:     domain.ShiftStart,
			Mechanic:  "J",
			VanID:     "179",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, err := audit.ListRecent(context.Background(), total)
	require.NoError(t, err)
	require.Len(t, got, service.MaxListLimit)

	// Newest first: the five oldest entries fall off the end.
	for i, e := range got {
		require.Equal(t, ids[total-1-i], e.ID)
	}
	for i := 1; i < len(got); i++ {
		require.True(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
}
