package accounts

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/auth"
)

const UsernameMinLength = 3
const PasswordMinLength = 8

type Handler struct {
	Env    *env.Environment
	Admins *repository.AdminUsers
	JWT    auth.JWTHandler
}

func NewHandler(db *database.Connection, env *env.Environment) (*Handler, error) {
	jwt, err := auth.MakeJWTHandler([]byte(env.App.MasterKey), env.Admin.TokenTTL())

	if err != nil {
		return nil, fmt.Errorf("failed to make jwt handler: %v", err)
	}

	return &Handler{
		Env:    env,
		Admins: &repository.AdminUsers{DB: db},
		JWT:    jwt,
	}, nil
}
