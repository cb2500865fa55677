package migrations

import "gorm.io/gorm"

// Composite index backing the history listing: newest first, ties broken by id
// so limit/offset pagination stays stable under concurrent inserts.
func init() {
	Register("0001_history_index", func(db *gorm.DB) error {
		return db.Exec(`CREATE INDEX IF NOT EXISTS idx_calculations_user_history
			ON calculations (user_id, created_at DESC, id DESC)`).Error
	}, func(db *gorm.DB) error {
		return db.Exec(`DROP INDEX IF EXISTS idx_calculations_user_history`).Error
	})
}
