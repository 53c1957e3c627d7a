package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

var sampleVideos = []models.Video{
	{Title: "Introduction to React", Tags: models.TagList{"react", "javascript", "tutorial"}, ExternalURL: "https://example.com/video1",
		Image1URL: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400",
		Image2URL: "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=400",
		Image3URL: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400", Position: 1},
	{Title: "TypeScript Basics", Tags: models.TagList{"typescript", "programming", "tutorial"}, ExternalURL: "https://example.com/video2",
		Image1URL: "https://images.unsplash.com/photo-1587620962725-abab7fe55159?w=400",
		Image2URL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400",
		Image3URL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400", Position: 2},
	{Title: "Web Design Principles", Tags: models.TagList{"design", "ui", "ux"}, ExternalURL: "https://example.com/video3",
		Image1URL: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400",
		Image2URL: "https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=400",
		Image3URL: "https://images.unsplash.com/photo-1572044162444-ad60f128bdea?w=400", Position: 3},
	{Title: "Backend Development", Tags: models.TagList{"backend", "api", "nodejs"}, ExternalURL: "https://example.com/video4",
		Image1URL: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400",
		Image2URL: "https://images.unsplash.com/photo-1629654297299-c8506221ca97?w=400",
		Image3URL: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400", Position: 4},
	{Title: "CSS Animations", Tags: models.TagList{"css", "animation", "frontend"}, ExternalURL: "https://example.com/video5",
		Image1URL: "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2?w=400",
		Image2URL: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=400",
		Image3URL: "https://images.unsplash.com/photo-1547658719-da2b51169166?w=400", Position: 5},
	{Title: "Database Design", Tags: models.TagList{"database", "sql", "backend"}, ExternalURL: "https://example.com/video6",
		Image1URL: "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=400",
		Image2URL: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400",
		Image3URL: "https://images.unsplash.com/photo-1551033406-611cf9a28f67?w=400", Position: 6},
	{Title: "Mobile Development", Tags: models.TagList{"mobile", "react-native", "ios"}, ExternalURL: "https://example.com/video7",
		Image1URL: "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=400",
		Image2URL: "https://images.unsplash.com/photo-1551650975-87deedd944c3?w=400",
		Image3URL: "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=400", Position: 7},
	{Title: "Git and GitHub", Tags: models.TagList{"git", "version-control", "tutorial"}, ExternalURL: "https://example.com/video8",
		Image1URL: "https://images.unsplash.com/photo-1556075798-4825dfaaf498?w=400",
		Image2URL: "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb?w=400",
		Image3URL: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=400", Position: 8},
	{Title: "Docker Essentials", Tags: models.TagList{"docker", "devops", "containers"}, ExternalURL: "https://example.com/video9",
		Image1URL: "https://images.unsplash.com/photo-1605745341112-85968b19335b?w=400",
		Image2URL: "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?w=400",
		Image3URL: "https://images.unsplash.com/photo-1579003593419-98f949b9398f?w=400", Position: 9},
	{Title: "Security Best Practices", Tags: models.TagList{"security", "encryption", "cybersecurity"}, ExternalURL: "https://example.com/video10",
		Image1URL: "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?w=400",
		Image2URL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=400",
		Image3URL: "https://images.unsplash.com/photo-1563206767-5b18f218e8de?w=400", Position: 10},
	{Title: "Testing Strategies", Tags: models.TagList{"testing", "qa", "automation"}, ExternalURL: "https://example.com/video11",
		Image1URL: "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=400",
		Image2URL: "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?w=400",
		Image3URL: "https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?w=400", Position: 11},
	{Title: "Performance Optimization", Tags: models.TagList{"performance", "optimization", "frontend"}, ExternalURL: "https://example.com/video12",
		Image1URL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
		Image2URL: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=400",
		Image3URL: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400", Position: 12},
}

// SeedData handles POST /seed-data. Seeding is idempotent: a non-empty
// videos table is left untouched.
func SeedData(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var count int
	if err := database.DB.Model(&models.Video{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Database already has data"})
		return
	}

	tx := database.DB.Begin()
	for i := range sampleVideos {
		video := sampleVideos[i]
		if err := tx.Create(&video).Error; err != nil {
			tx.Rollback()
			logrus.Errorf("seed videos: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logrus.WithField("count", len(sampleVideos)).Info("sample videos inserted")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Added %d sample videos", len(sampleVideos)),
	})
}
