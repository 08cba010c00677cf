package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/auth"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

// AuthHandler exchanges admin credentials for a signed bearer token.
type AuthHandler struct {
	Admins    *repository.AdminUsers
	JWT       auth.JWTHandler
	Validator *portal.Validator
}

func NewAuthHandler(admins *repository.AdminUsers, jwt auth.JWTHandler, validator *portal.Validator) AuthHandler {
	return AuthHandler{Admins: admins, JWT: jwt, Validator: validator}
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	req, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if errs := h.Validator.Check(req); errs != nil {
		return endpoint.UnprocessableEntity("username and password are required", errs)
	}

	admin := h.Admins.FindBy(req.Username)
	if admin == nil {
		return endpoint.LogUnauthorisedError("invalid credentials", errors.New("unknown admin "+req.Username))
	}

	if err := auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		return endpoint.LogUnauthorisedError("invalid credentials", err)
	}

	token, expiresAt, err := h.JWT.Generate(admin.Username)
	if err != nil {
		return endpoint.LogInternalError("could not generate token", err)
	}

	data := payload.TokenResponse{Token: token, ExpiresAt: expiresAt}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(data); err != nil {
		slog.Error("failed to encode token response", "err", err)
	}

	return nil
}
