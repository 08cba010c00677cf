package payload

import (
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/mailer"
)

const ContactSuccessMessage = "Mensaje enviado correctamente"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func (r *ContactRequest) Sanitise() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r ContactRequest) ToAttrs(ip *string, userAgent string) database.ContactMessageAttrs {
	return database.ContactMessageAttrs{
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		IPAddress: ip,
		UserAgent: userAgent,
	}
}

func (r ContactRequest) ToNotification() mailer.ContactNotification {
	return mailer.ContactNotification{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
