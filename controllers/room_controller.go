package controllers

import (
	"net/http"
	"strconv"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func roomNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return 0, false
	}
	return n, true
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByNumber(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type createRoomPayload struct {
	RoomNumber  int     `json:"roomNumber" binding:"required"`
	RoomType    string  `json:"roomType" binding:"required"`
	Price       float64 `json:"price"`
	CleanStatus string  `json:"cleanStatus"`
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := models.Room{
		RoomNumber:  payload.RoomNumber,
		RoomType:    payload.RoomType,
		Price:       payload.Price,
		CleanStatus: payload.CleanStatus,
	}
	if err := rc.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

type updateRoomPayload struct {
	RoomType    string  `json:"roomType" binding:"required"`
	Price       float64 `json:"price"`
	CleanStatus string  `json:"cleanStatus" binding:"required"`
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	var payload updateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.Rooms.Update(number, payload.RoomType, payload.Price, payload.CleanStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(number); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": number})
}
