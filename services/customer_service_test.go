package services

import (
	"testing"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "  Li Lei ", Contact: "13800000000", IDCard: "11010519491231002X"}
	require.NoError(t, svc.Create(&customer))
	assert.Equal(t, "Li Lei", customer.Name)
	assert.NotZero(t, customer.ID)

	dup := models.Customer{Name: "Someone", IDCard: "11010519491231002X"}
	assert.ErrorIs(t, svc.Create(&dup), ErrDuplicate)

	bad := models.Customer{Name: "Bad Card", IDCard: "110105199001010044"}
	assert.ErrorIs(t, svc.Create(&bad), ErrIDCardInvalid)

	nameless := models.Customer{IDCard: "110105199001010045"}
	assert.Error(t, svc.Create(&nameless))
}

func TestCustomerUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	first := seedCustomer(t, db, "Li Lei", "11010519491231002X")
	second := seedCustomer(t, db, "Han Meimei", "110105199001010045")

	updated, err := svc.Update(first.ID, "Li Lei", "13900000000", "320583198511220064")
	require.NoError(t, err)
	assert.Equal(t, "13900000000", updated.Contact)
	assert.Equal(t, "320583198511220064", updated.IDCard)

	// taking another customer's id card is a duplicate
	_, err = svc.Update(first.ID, "Li Lei", "", second.IDCard)
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = svc.Update(first.ID, "Li Lei", "", "not-an-id")
	assert.ErrorIs(t, err, ErrIDCardInvalid)
	_, err = svc.Update(999, "Nobody", "", "11010519491231002X")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerAddPoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")

	got, err := svc.AddPoints(customer.ID, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Points)

	got, err = svc.AddPoints(customer.ID, -500)
	require.NoError(t, err)
	assert.Zero(t, got.Points)

	_, err = svc.AddPoints(999, 10)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerDelete(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 300)
	customer := seedCustomer(t, db, "Li Lei", "11010519491231002X")
	resSvc := newTestReservationService(t, db)
	svc := NewCustomerService(db)

	reservation, err := resSvc.CreateReservation(101, customer.ID,
		mustDate(t, "2025-06-01"), mustDate(t, "2025-06-03"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(customer.ID), ErrCustomerInUse)

	// even a cancelled reservation keeps the guest on file
	require.NoError(t, resSvc.CancelReservation(reservation.ID))
	assert.ErrorIs(t, svc.Delete(customer.ID), ErrCustomerInUse)

	fresh := seedCustomer(t, db, "Han Meimei", "110105199001010045")
	require.NoError(t, svc.Delete(fresh.ID))
	assert.ErrorIs(t, svc.Delete(999), ErrCustomerNotFound)
}
