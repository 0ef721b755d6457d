package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchscore-dev/launchscore/internal/models"
	"github.com/launchscore-dev/launchscore/internal/services"
	"github.com/launchscore-dev/launchscore/internal/utils"
)

// URL is deliberately not validated here: empty or malformed input is
// normalized and scored as-is, matching the scan contract.
type RunScanRequest struct {
	URL string `json:"url"`
}

type ScanResponse struct {
	ID        uint            `json:"id"`
	URL       string          `json:"url"`
	Score     int             `json:"score"`
	Breakdown json.RawMessage `json:"breakdown,omitempty"`
	UserID    uint            `json:"userId"`
	WebsiteID uint            `json:"websiteId"`
	CreatedAt time.Time       `json:"createdAt"`
}

type DashboardStatsResponse struct {
	Total  int           `json:"total"`
	Avg    int           `json:"avg"`
	Latest *ScanResponse `json:"latest"`
}

func buildScanResponse(scan models.Scan) ScanResponse {
	return ScanResponse{
		ID:        scan.ID,
		URL:       scan.URL,
		Score:     scan.Score,
		Breakdown: json.RawMessage(scan.Breakdown),
		UserID:    scan.UserID,
		WebsiteID: scan.WebsiteID,
		CreatedAt: scan.CreatedAt,
	}
}

func RunScan(ctx *gin.Context) {
	var req RunScanRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	scan, err := services.CreateScan(userID, req.URL)

	if err != nil {
		log.Printf("Failed to run scan for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Scan failed"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    buildScanResponse(*scan),
	})
}

func FetchDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	scans, err := services.DashboardScans(userID)

	if err != nil {
		log.Printf("Failed to load dashboard for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Dashboard error"})
		return
	}

	data := make([]ScanResponse, 0, len(scans))

	for _, scan := range scans {
		data = append(data, buildScanResponse(scan))
	}

	stats := services.BuildDashboardStats(scans)

	response := DashboardStatsResponse{
		Total: stats.Total,
		Avg:   stats.Avg,
	}

	if len(data) > 0 {
		response.Latest = &data[0]
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"stats":   response,
	})
}

func FetchArchive(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	scans, err := services.AllScans(userID, ctx.Query("search"))

	if err != nil {
		log.Printf("Failed to load archive for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Archive error"})
		return
	}

	data := make([]ScanResponse, 0, len(scans))

	for _, scan := range scans {
		data = append(data, buildScanResponse(scan))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func RemoveScan(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	scanID, err := utils.GetScanID(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete operation failed"})
		return
	}

	if err := services.DeleteScan(userID, uint(scanID)); err != nil {
		if !errors.Is(err, services.ErrScanNotFound) {
			log.Printf("Failed to delete scan %d for user %d: %v", scanID, userID, err)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete operation failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Scan record deleted",
	})
}

func FetchSingleScan(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	scanID, err := utils.GetScanID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
		return
	}

	scan, err := services.GetScan(userID, uint(scanID))

	if err != nil {
		if errors.Is(err, services.ErrScanNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
			return
		}
		log.Printf("Failed to fetch scan %d for user %d: %v", scanID, userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    buildScanResponse(*scan),
	})
}
