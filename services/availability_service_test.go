package services

import (
	"testing"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailabilityDateValidation(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	svc := NewAvailabilityService(db)

	err := svc.CheckAvailability(101, mustDate(t, "2025-06-03"), mustDate(t, "2025-06-01"), 0)
	assert.ErrorIs(t, err, ErrDateRangeInvalid)

	// zero-length stay is invalid too
	err = svc.CheckAvailability(101, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-01"), 0)
	assert.ErrorIs(t, err, ErrDateRangeInvalid)
}

func TestCheckAvailabilityUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	err := svc.CheckAvailability(999, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-03"), 0)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCheckAvailabilityOverlap(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	reservations := newTestReservationService(t, db)
	_, err := reservations.CreateReservation(101, customer.ID,
		mustDate(t, "2025-06-10"), mustDate(t, "2025-06-13"))
	require.NoError(t, err)

	svc := NewAvailabilityService(db)

	cases := []struct {
		name     string
		in, out  string
		conflict bool
	}{
		{"identical interval", "2025-06-10", "2025-06-13", true},
		{"starts inside", "2025-06-11", "2025-06-15", true},
		{"ends inside", "2025-06-08", "2025-06-11", true},
		{"contains existing", "2025-06-09", "2025-06-14", true},
		{"contained by existing", "2025-06-11", "2025-06-12", true},
		{"touches start boundary", "2025-06-08", "2025-06-10", false},
		{"touches end boundary", "2025-06-13", "2025-06-15", false},
		{"disjoint before", "2025-06-01", "2025-06-05", false},
		{"disjoint after", "2025-06-20", "2025-06-22", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CheckAvailability(101, mustDate(t, tc.in), mustDate(t, tc.out), 0)
			if tc.conflict {
				assert.ErrorIs(t, err, ErrConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckAvailabilityIgnoresInactiveReservations(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	reservations := newTestReservationService(t, db)
	created, err := reservations.CreateReservation(101, customer.ID,
		mustDate(t, "2025-06-10"), mustDate(t, "2025-06-13"))
	require.NoError(t, err)
	require.NoError(t, reservations.CancelReservation(created.ID))

	svc := NewAvailabilityService(db)
	err = svc.CheckAvailability(101, mustDate(t, "2025-06-10"), mustDate(t, "2025-06-13"), 0)
	assert.NoError(t, err)
}

func TestCheckAvailabilityExcludesOwnReservation(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	reservations := newTestReservationService(t, db)
	created, err := reservations.CreateReservation(101, customer.ID,
		mustDate(t, "2025-06-10"), mustDate(t, "2025-06-13"))
	require.NoError(t, err)

	svc := NewAvailabilityService(db)

	// re-checking the row against itself must not conflict
	assert.NoError(t, svc.CheckAvailability(101,
		mustDate(t, "2025-06-11"), mustDate(t, "2025-06-14"), created.ID))
	// but without the exclusion it does
	assert.ErrorIs(t, svc.CheckAvailability(101,
		mustDate(t, "2025-06-11"), mustDate(t, "2025-06-14"), 0), ErrConflict)
}

func TestCheckAvailabilityConsidersCheckedIn(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	reservations := newTestReservationService(t, db)
	_, err := reservations.CreateReservation(101, customer.ID,
		mustDate(t, "2025-06-01"), mustDate(t, "2025-06-05"))
	require.NoError(t, err)
	_, err = reservations.CheckIn(101, customer.ID)
	require.NoError(t, err)

	var stored models.Reservation
	require.NoError(t, db.First(&stored, "room_number = ?", 101).Error)
	require.Equal(t, models.ReservationCheckedIn, stored.Status)

	svc := NewAvailabilityService(db)
	err = svc.CheckAvailability(101, mustDate(t, "2025-06-02"), mustDate(t, "2025-06-04"), 0)
	assert.ErrorIs(t, err, ErrConflict)
}
