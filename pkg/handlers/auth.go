package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"video-catalog/cmd/config"
	"video-catalog/pkg/auth"
	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

type authRequest struct {
	Action       string `json:"action"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	SessionToken string `json:"session_token"`
}

// Auth handles POST /auth. The operation is selected by the "action" body
// field: register, login, or verify.
func Auth(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	action := req.Action
	if action == "" {
		action = "login"
	}
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	switch action {
	case "register":
		register(c, username, password)
	case "login":
		login(c, username, password)
	case "verify":
		verify(c, strings.TrimSpace(req.SessionToken))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func register(c *gin.Context, username, password string) {
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: auth.HashPassword(password),
		IsAdmin:      false,
	}

	tx := database.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		logrus.WithField("username", username).Errorf("create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	session, err := auth.StartSession(database.DB, &user, config.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithField("username", username).Info("user registered")
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"session_token": session.Token,
		"user":          user,
	})
}

func login(c *gin.Context, username, password string) {
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	var user models.User
	err := database.DB.
		Where("username = ? AND password_hash = ?", username, auth.HashPassword(password)).
		First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	session, err := auth.StartSession(database.DB, &user, config.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithField("username", username).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"session_token": session.Token,
		"user":          user,
	})
}

func verify(c *gin.Context, token string) {
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session token"})
		return
	}

	user, err := auth.SessionUser(database.DB, token)
	if err == auth.ErrInvalidSession {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
