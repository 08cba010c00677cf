package env

import "time"

const DefaultAdminTokenTTLMinutes = 60

type AdminEnvironment struct {
	TokenTTLMinutes int `validate:"required,gt=0,lte=1440"`
}

func (e AdminEnvironment) TokenTTL() time.Duration {
	return time.Duration(e.TokenTTLMinutes) * time.Minute
}
