package services

import "errors"

// Failure kinds surfaced by the front-desk core. Controllers map each to a
// distinct HTTP status and message; anything else coming out of a service is
// a wrapped storage error.
var (
	ErrRoomNotFound          = errors.New("room_not_found")
	ErrCustomerNotFound      = errors.New("customer_not_found")
	ErrReservationNotFound   = errors.New("reservation_not_found")
	ErrDateRangeInvalid      = errors.New("date_range_invalid")
	ErrConflict              = errors.New("room_already_booked")
	ErrInvalidTransition     = errors.New("invalid_status_transition")
	ErrNoMatchingReservation = errors.New("no_matching_reservation")
	ErrRoomNotOccupied       = errors.New("room_not_occupied")
	ErrCustomerInUse         = errors.New("customer_has_reservations")
	ErrRoomInUse             = errors.New("room_has_active_reservations")
	ErrIDCardInvalid         = errors.New("id_card_invalid")
	ErrDuplicate             = errors.New("duplicate_record")
)
