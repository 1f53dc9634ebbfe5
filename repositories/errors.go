package repositories

import (
	"errors"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository lookup that matches no row, so
// services never depend on gorm error values directly.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IsDuplicateEntry reports whether err is a MySQL unique-key violation (1062).
func IsDuplicateEntry(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return false
}

// IsForeignKeyViolation reports whether err is a MySQL FK violation (1452).
func IsForeignKeyViolation(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	return false
}
