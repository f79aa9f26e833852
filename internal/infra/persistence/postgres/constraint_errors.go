package postgres

import (
	"strings"

	"arcade/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err was caused by a unique
// index. GORM's TranslateError covers the common path; the message check
// catches drivers that slip through untranslated.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") // PostgreSQL unique_violation
}
