package database

import (
	"fmt"
	"log/slog"

	"github.com/Matias-sh/mi-portafolio/metal/env"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DriverName = "postgres"

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB

	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

// NewGormConfig is shared by the postgres connection and the sqlite test
// connections so both translate driver errors the same way.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	return true
}

// Ping performs a round trip to the database server.
func (c *Connection) Ping() error {
	conn, err := c.driver.DB()
	if err != nil {
		return fmt.Errorf("error retrieving the db driver: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("error pinging the db driver: %w", err)
	}

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
