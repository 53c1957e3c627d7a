package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

// perPage is fixed; the frontend renders a 12-card grid.
const perPage = 12

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user input matches
// literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Videos handles GET (list/search), POST (create) and DELETE on /videos.
// Mutations require an admin session.
func Videos(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		listVideos(c)
	case http.MethodPost:
		createVideo(c)
	case http.MethodDelete:
		deleteVideo(c)
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}

func listVideos(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	search := strings.TrimSpace(c.Query("search"))
	tag := strings.TrimSpace(c.Query("tag"))

	// Count and page queries must run over the identical predicate chain.
	query := database.DB.Model(&models.Video{})
	if search != "" {
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(search))+"%")
	}
	if tag != "" {
		// Tags are stored as a JSON array of strings, so an exact element
		// match is a quoted substring match.
		query = query.Where(`tags LIKE ? ESCAPE '\'`, `%"`+escapeLike(tag)+`"%`)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	videos := []models.Video{}
	err = query.
		Order("position DESC, created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":      videos,
		"total":       total,
		"page":        page,
		"per_page":    perPage,
		"total_pages": (total + perPage - 1) / perPage,
	})
}

type videoRequest struct {
	Title       string         `json:"title"`
	Tags        models.TagList `json:"tags"`
	ExternalURL string         `json:"external_url"`
	Image1URL   string         `json:"image1_url"`
	Image2URL   string         `json:"image2_url"`
	Image3URL   string         `json:"image3_url"`
}

func createVideo(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	video := models.Video{
		Title:       strings.TrimSpace(req.Title),
		Tags:        req.Tags,
		ExternalURL: strings.TrimSpace(req.ExternalURL),
		Image1URL:   strings.TrimSpace(req.Image1URL),
		Image2URL:   strings.TrimSpace(req.Image2URL),
		Image3URL:   strings.TrimSpace(req.Image3URL),
	}
	if video.Title == "" || video.ExternalURL == "" ||
		video.Image1URL == "" || video.Image2URL == "" || video.Image3URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if video.Tags == nil {
		video.Tags = models.TagList{}
	}

	tx := database.DB.Begin()
	row := tx.Model(&models.Video{}).Select("COALESCE(MAX(position), 0) + 1").Row()
	if err := row.Scan(&video.Position); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := tx.Create(&video).Error; err != nil {
		tx.Rollback()
		logrus.Errorf("create video: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithField("id", video.ID).Info("video created")
	c.JSON(http.StatusOK, gin.H{"success": true, "id": video.ID})
}

func deleteVideo(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video ID required"})
		return
	}

	// Deleting an id that does not exist is still a success.
	if err := database.DB.Where("id = ?", id).Delete(&models.Video{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithField("id", id).Info("video deleted")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
