package controllers

import (
	"errors"
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Availability *services.AvailabilityService
}

func NewReservationController(reservations *services.ReservationService, availability *services.AvailabilityService) *ReservationController {
	return &ReservationController{Reservations: reservations, Availability: availability}
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Reservations.GetAllWithRelations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reservation, err := rc.Reservations.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

type availabilityQuery struct {
	RoomNumber int    `form:"room_number" binding:"required"`
	CheckIn    string `form:"check_in" binding:"required"`
	CheckOut   string `form:"check_out" binding:"required"`
	Excluding  uint   `form:"excluding_reservation_id"`
}

// CheckAvailability answers the pure read-side question without mutating
// anything.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var query availabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_number, check_in and check_out are required")
		return
	}

	checkIn, err := utils.ParseDate(query.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(query.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := rc.Availability.CheckAvailability(query.RoomNumber, checkIn, checkOut, query.Excluding); err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONSuccess(c, http.StatusOK, gin.H{"available": false, "reason": "room is already booked for overlapping dates"})
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": true})
}

type reservationPayload struct {
	RoomNumber int    `json:"room_number" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	CheckIn    string `json:"check_in_date" binding:"required"`
	CheckOut   string `json:"check_out_date" binding:"required"`
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.Reservations.CreateReservation(payload.RoomNumber, payload.CustomerID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

type modifyReservationPayload struct {
	RoomNumber int    `json:"room_number" binding:"required"`
	CheckIn    string `json:"check_in_date" binding:"required"`
	CheckOut   string `json:"check_out_date" binding:"required"`
}

func (rc *ReservationController) ModifyReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var payload modifyReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.Reservations.ModifyReservation(id, payload.RoomNumber, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.Reservations.CancelReservation(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

type checkInPayload struct {
	RoomNumber int  `json:"room_number" binding:"required"`
	CustomerID uint `json:"customer_id" binding:"required"`
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	reservation, err := rc.Reservations.CheckIn(payload.RoomNumber, payload.CustomerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

type checkOutPayload struct {
	RoomNumber int `json:"room_number" binding:"required"`
}

func (rc *ReservationController) CheckOut(c *gin.Context) {
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	charge, err := rc.Reservations.CheckOut(payload.RoomNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charge)
}
