package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsportal/models"
)

// notFound turns gorm's record-not-found into the domain error and passes
// anything else through.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("%s not found", what)
	}
	return err
}

// publicProfile limits a preloaded user to what readers may see.
func publicProfile(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "image")
}

// isUniqueViolation recognises duplicate-key errors from PostgreSQL and
// SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// forUpdate locks the selected rows until the surrounding transaction ends.
// SQLite ignores the clause.
var forUpdate = clause.Locking{Strength: "UPDATE"}
