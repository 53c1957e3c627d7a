package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"github.com/jinzhu/gorm"

	"video-catalog/pkg/models"
)

// ErrInvalidSession is returned when a token resolves to no live session.
var ErrInvalidSession = errors.New("invalid session")

// HashPassword returns the hex sha-256 digest of the password. The digest is
// deterministic on purpose: login matches username and digest in a single
// exact lookup.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewToken generates a URL-safe session token from 32 bytes of entropy.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// StartSession issues a fresh token for the user and persists it.
func StartSession(db *gorm.DB, user *models.User, ttl time.Duration) (*models.Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// SessionUser resolves a token to its user, rejecting unknown and expired
// sessions with ErrInvalidSession.
func SessionUser(db *gorm.DB, token string) (*models.User, error) {
	var session models.Session
	err := db.Where("token = ?", token).First(&session).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidSession
	}
	var user models.User
	err = db.Where("id = ?", session.UserID).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
