package controllers

import (
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

type chatPayload struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage blocks on the upstream call; gin already runs each request on
// its own goroutine, so the reservation core is never held up.
func (cc *ChatController) SendMessage(c *gin.Context) {
	sessionID := c.Param("session")

	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := cc.Chat.Send(c.Request.Context(), sessionID, payload.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reply": reply})
}

func (cc *ChatController) GetHistory(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, cc.Chat.History(c.Param("session")))
}

func (cc *ChatController) ResetSession(c *gin.Context) {
	cc.Chat.Reset(c.Param("session"))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reset": c.Param("session")})
}
