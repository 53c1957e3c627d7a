package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TagList is an ordered list of tags stored as a JSON text column so the
// same schema works on both the postgres and sqlite dialects.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(src interface{}) error {
	if src == nil {
		*t = TagList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
	if len(b) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(b, t)
}

type User struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"-"`
}

type Video struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Tags        TagList   `gorm:"type:text" json:"tags"`
	ExternalURL string    `gorm:"column:external_url" json:"external_url"`
	Image1URL   string    `gorm:"column:image1_url" json:"image1_url"`
	Image2URL   string    `gorm:"column:image2_url" json:"image2_url"`
	Image3URL   string    `gorm:"column:image3_url" json:"image3_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session maps an issued token back to its user. Verify and the admin
// check resolve tokens here instead of trusting client-supplied headers.
type Session struct {
	ID        uint      `gorm:"primary_key" json:"-"`
	Token     string    `gorm:"unique;not null" json:"token"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
