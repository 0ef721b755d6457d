package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchscore-dev/launchscore/db"
	"github.com/launchscore-dev/launchscore/internal/models"
	"github.com/launchscore-dev/launchscore/internal/utils"
)

type CreateWebsiteRequest struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

type WebsiteResponse struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Name      string    `json:"name,omitempty"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func AddWebsite(ctx *gin.Context) {
	var req CreateWebsiteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	website := models.Website{
		URL:    utils.NormalizeURL(req.URL),
		Name:   req.Name,
		UserID: userID,
	}

	if err := db.DB.Create(&website).Error; err != nil {
		log.Printf("Failed to create website: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to create website"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"website": WebsiteResponse{
			ID:        website.ID,
			URL:       website.URL,
			Name:      website.Name,
			UserID:    website.UserID,
			CreatedAt: website.CreatedAt,
		},
	})
}

func ListWebsites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var websites []models.Website

	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&websites).Error; err != nil {
		log.Printf("Failed to list websites: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to retrieve websites"})
		return
	}

	response := make([]WebsiteResponse, 0, len(websites))

	for _, website := range websites {
		response = append(response, WebsiteResponse{
			ID:        website.ID,
			URL:       website.URL,
			Name:      website.Name,
			UserID:    website.UserID,
			CreatedAt: website.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"websites": response,
	})
}

func RemoveWebsite(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	websiteID, err := utils.GetWebsiteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result := db.DB.Where("id = ? AND user_id = ?", websiteID, userID).Delete(&models.Website{})

	if result.Error != nil {
		log.Printf("Failed to delete website %d: %v", websiteID, result.Error)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to delete website"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Website not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Website deleted",
	})
}
