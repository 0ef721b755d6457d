package services

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/launchscore-dev/launchscore/db"
	"github.com/launchscore-dev/launchscore/internal/models"
	"github.com/launchscore-dev/launchscore/internal/scanner"
	"github.com/launchscore-dev/launchscore/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The dashboard shows at most this many scans, one per distinct URL.
const dashboardLimit = 4

var ErrScanNotFound = errors.New("scan not found")

// Scorer produces the score for every new scan. Package-level so a real
// auditing engine can replace the simulated one without touching the
// service contract.
var Scorer scanner.Scorer = scanner.NewSimulatedScorer()

type DashboardStats struct {
	Total  int          `json:"total"`
	Avg    int          `json:"avg"`
	Latest *models.Scan `json:"latest"`
}

// CreateScan normalizes the URL, scores it, and persists a Scan under the
// Website for (userID, url), creating that Website on first sight. The
// find-or-create is an insert-on-conflict-do-nothing followed by a select,
// so concurrent scans of the same new URL converge on a single Website row.
func CreateScan(userID uint, rawURL string) (*models.Scan, error) {
	cleanURL := utils.NormalizeURL(rawURL)

	result := Scorer.Score(cleanURL)

	breakdown, err := json.Marshal(result.Breakdown)

	if err != nil {
		return nil, err
	}

	website := models.Website{
		URL:    cleanURL,
		UserID: userID,
	}

	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "url"}},
		DoNothing: true,
	}).Create(&website).Error; err != nil {
		return nil, err
	}

	// ID stays zero when the insert hit the conflict, so the row exists.
	if website.ID == 0 {
		if err := db.DB.Where("user_id = ? AND url = ?", userID, cleanURL).First(&website).Error; err != nil {
			return nil, err
		}
	}

	scan := models.Scan{
		URL:       cleanURL,
		Score:     result.Overall,
		Breakdown: breakdown,
		UserID:    userID,
		WebsiteID: website.ID,
	}

	if err := db.DB.Create(&scan).Error; err != nil {
		return nil, err
	}

	return &scan, nil
}

// DashboardScans returns the newest scan per distinct URL, newest-first,
// capped at dashboardLimit entries.
func DashboardScans(userID uint) ([]models.Scan, error) {
	var scans []models.Scan

	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&scans).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, dashboardLimit)
	distinct := make([]models.Scan, 0, dashboardLimit)

	for _, scan := range scans {
		if seen[scan.URL] {
			continue
		}

		seen[scan.URL] = true
		distinct = append(distinct, scan)

		if len(distinct) == dashboardLimit {
			break
		}
	}

	return distinct, nil
}

// BuildDashboardStats derives the summary shown above the dashboard list.
// Avg is the rounded mean of the returned scores, zero when there are none.
func BuildDashboardStats(scans []models.Scan) DashboardStats {
	stats := DashboardStats{Total: len(scans)}

	if len(scans) == 0 {
		return stats
	}

	sum := 0

	for _, scan := range scans {
		sum += scan.Score
	}

	stats.Avg = int(math.Round(float64(sum) / float64(len(scans))))
	stats.Latest = &scans[0]

	return stats
}

// AllScans returns the full scan history for a user, newest-first,
// optionally filtered by a case-insensitive substring match on the URL.
func AllScans(userID uint, search string) ([]models.Scan, error) {
	query := db.DB.Where("user_id = ?", userID)

	if search != "" {
		query = query.Where("lower(url) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var scans []models.Scan

	if err := query.Order("created_at DESC, id DESC").Find(&scans).Error; err != nil {
		return nil, err
	}

	return scans, nil
}

// DeleteScan removes the scan iff it belongs to the user. Ownership lives in
// the WHERE predicate, so a foreign id can never delete another user's row.
func DeleteScan(userID uint, scanID uint) error {
	result := db.DB.Where("id = ? AND user_id = ?", scanID, userID).Delete(&models.Scan{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrScanNotFound
	}

	return nil
}

// GetScan returns the scan iff it belongs to the user; a nonexistent or
// foreign id is indistinguishable from not found.
func GetScan(userID uint, scanID uint) (*models.Scan, error) {
	var scan models.Scan

	if err := db.DB.Where("id = ? AND user_id = ?", scanID, userID).First(&scan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScanNotFound
		}

		return nil, err
	}

	return &scan, nil
}
