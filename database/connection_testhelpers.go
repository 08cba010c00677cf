package database

import "gorm.io/gorm"

// NewConnectionFromGorm wraps an already opened gorm handle, such as an
// in-memory sqlite database in tests.
func NewConnectionFromGorm(db *gorm.DB) *Connection {
	return &Connection{driver: db}
}
