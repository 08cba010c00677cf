package env

import "fmt"

type DBEnvironment struct {
	UserName     string `validate:"required,min=3"`
	UserPassword string `validate:"required,min=6"`
	DatabaseName string `validate:"required,min=3"`
	Port         int    `validate:"required,numeric,gt=0"`
	Host         string `validate:"required,hostname|ip"`
	DriverName   string `validate:"required"`
	SSLMode      string `validate:"required,oneof=disable require verify-ca verify-full prefer allow"`
	TimeZone     string `validate:"required"`
}

func (e DBEnvironment) GetDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		e.Host,
		e.UserName,
		e.UserPassword,
		e.DatabaseName,
		e.Port,
		e.SSLMode,
		e.TimeZone,
	)
}
