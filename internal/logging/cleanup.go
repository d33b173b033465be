package logging

import (
	"log/slog"
	"time"

	"github.com/rateview/storefront-backend/internal/models"
	"gorm.io/gorm"
)

const logRetention = 30 // days

// StartCleanup runs a daily goroutine that deletes expired system logs and
// refresh tokens whose expiry has long passed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -logRetention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}

				tokens := db.Where("expires_at < ?", cutoff).Delete(&models.RefreshToken{})
				if tokens.Error != nil {
					slog.Error("refresh token cleanup failed", "error", tokens.Error)
				} else if tokens.RowsAffected > 0 {
					slog.Info("refresh token cleanup completed", "deleted", tokens.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
