package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps each core failure kind to a distinct status and
// human-readable message. Anything unmapped is a storage error: logged in
// full, reported generically.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found")
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.JSONError(c, http.StatusNotFound, "customer not found")
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
	case errors.Is(err, services.ErrTransactionNotFound):
		utils.JSONError(c, http.StatusNotFound, "transaction not found")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrDateRangeInvalid):
		utils.JSONError(c, http.StatusBadRequest, "check-out date must be after check-in date")
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "room is already booked for overlapping dates")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "reservation status does not allow this operation")
	case errors.Is(err, services.ErrNoMatchingReservation):
		utils.JSONError(c, http.StatusNotFound, "no reserved booking matches this room and customer")
	case errors.Is(err, services.ErrRoomNotOccupied):
		utils.JSONError(c, http.StatusConflict, "room is not occupied")
	case errors.Is(err, services.ErrRoomInUse):
		utils.JSONError(c, http.StatusConflict, "room still has active reservations")
	case errors.Is(err, services.ErrCustomerInUse):
		utils.JSONError(c, http.StatusConflict, "customer is referenced by reservations")
	case errors.Is(err, services.ErrIDCardInvalid):
		utils.JSONError(c, http.StatusBadRequest, "id card number is invalid")
	case errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, "record already exists")
	case errors.Is(err, services.ErrLastAdmin):
		utils.JSONError(c, http.StatusConflict, "cannot remove the last administrator")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrChatDisabled):
		utils.JSONError(c, http.StatusServiceUnavailable, "chat companion is not configured")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
