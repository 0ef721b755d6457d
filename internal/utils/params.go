package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetScanID(ctx *gin.Context) (uint64, error) {
	scanIDStr := ctx.Param("id")

	if scanIDStr == "" {
		return 0, errors.New("Scan ID not found")
	}

	scanID, err := strconv.ParseUint(scanIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Scan ID")
	}

	return scanID, nil
}

func GetWebsiteID(ctx *gin.Context) (uint64, error) {
	websiteIDStr := ctx.Param("id")

	if websiteIDStr == "" {
		return 0, errors.New("Website ID not found")
	}

	websiteID, err := strconv.ParseUint(websiteIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Website ID")
	}

	return websiteID, nil
}
