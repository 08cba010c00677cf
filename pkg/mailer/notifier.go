package mailer

import (
	"context"
	"fmt"
)

// ContactNotification carries a submitted contact form to the site owner.
type ContactNotification struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (n ContactNotification) Title() string {
	return "Contacto Portfolio: " + n.Subject
}

func (n ContactNotification) Body() string {
	return fmt.Sprintf("Nombre: %s\nEmail: %s\n\nMensaje:\n%s", n.Name, n.Email, n.Message)
}

// Notifier delivers contact notifications. Delivery is best-effort: callers
// log a returned error and carry on.
type Notifier interface {
	Notify(ctx context.Context, notification ContactNotification) error
}
