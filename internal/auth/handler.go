package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	Phone           string `json:"phone" form:"phone"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email" form:"username_or_email"`
	Password        string `json:"password" form:"password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

// --------------------------------------------------
// POST /register
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrMissingFields),
			errors.Is(err, ErrPasswordMismatch),
			errors.Is(err, ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("registration error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during registration, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful! You can now log in.",
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// --------------------------------------------------
// POST /login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
			return
		}
		log.Printf("login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during login, please try again"})
		return
	}

	ttl := SessionTTL
	if req.RememberMe {
		ttl = RememberTTL
	}

	token, err := GenerateToken(user.ID, user.Username, ttl)
	if err != nil {
		log.Printf("token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred during login, please try again"})
		return
	}

	c.SetCookie(SessionCookie, token, int(ttl/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.FirstName),
		"token":   token,
	})
}

// --------------------------------------------------
// GET /logout
// --------------------------------------------------
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully."})
}
