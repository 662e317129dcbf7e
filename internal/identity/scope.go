package identity

import "gorm.io/gorm"

// ForUser returns a GORM scope that filters by the owning user.
func ForUser(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
