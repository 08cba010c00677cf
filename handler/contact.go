package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/mailer"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

const NotifyTimeout = 10 * time.Second

type ContactHandler struct {
	Messages  *repository.ContactMessages
	Notifier  mailer.Notifier
	Validator *portal.Validator
	ClientIP  *portal.ClientIPResolver
}

func NewContactHandler(messages *repository.ContactMessages, notifier mailer.Notifier, validator *portal.Validator) ContactHandler {
	return ContactHandler{
		Messages:  messages,
		Notifier:  notifier,
		Validator: validator,
	}
}

// Store persists the message and only then tries to notify the owner. A
// failed notification is logged and never changes the response.
func (h ContactHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	req, err := endpoint.ParseRequestBody[payload.ContactRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	req.Sanitise()

	if errs := h.Validator.Check(req); errs != nil {
		return endpoint.UnprocessableEntity("the contact form is invalid", errs)
	}

	ip := portal.ParseValidIP(h.ClientIP.Resolve(r))

	message, err := h.Messages.Create(req.ToAttrs(ip, r.UserAgent()))
	if err != nil {
		return endpoint.LogInternalError("could not store the contact message", err)
	}

	h.notify(r.Context(), req, message.ID)

	resp := endpoint.NewNoCacheResponse(w, r)
	data := payload.ContactResponse{
		Success: true,
		Message: payload.ContactSuccessMessage,
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("failed to encode contact response", "err", err)
	}

	return nil
}

func (h ContactHandler) notify(parent context.Context, req payload.ContactRequest, messageID uint64) {
	if h.Notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), NotifyTimeout)
	defer cancel()

	if err := h.Notifier.Notify(ctx, req.ToNotification()); err != nil {
		slog.Error("contact notification failed", "message_id", messageID, "err", err)
	}
}
