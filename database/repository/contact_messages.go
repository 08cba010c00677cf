package repository

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
)

type ContactMessages struct {
	DB *database.Connection
}

func (c ContactMessages) Create(attrs database.ContactMessageAttrs) (*database.ContactMessage, error) {
	message := database.ContactMessage{
		Name:      attrs.Name,
		Email:     attrs.Email,
		Subject:   attrs.Subject,
		Message:   attrs.Message,
		IPAddress: attrs.IPAddress,
		UserAgent: attrs.UserAgent,
	}

	if err := c.DB.Sql().Create(&message).Error; err != nil {
		return nil, fmt.Errorf("issue creating contact message: %w", database.ClassifyError(err))
	}

	return &message, nil
}
