package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type chatRequest struct {
	Message string `json:"message"`
}

// --------------------------------------------------
// POST /chat
// --------------------------------------------------
//
// Always answers 200 with a response string; the chat UI never sees an
// HTTP error.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"response": emptyMessageResponse})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": h.service.Chat(c.Request.Context(), req.Message),
	})
}
