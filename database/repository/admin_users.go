package repository

import (
	"fmt"
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type AdminUsers struct {
	DB *database.Connection
}

func (a AdminUsers) FindBy(username string) *database.AdminUser {
	user := database.AdminUser{}

	result := a.DB.Sql().
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

// CreateOrUpdate stores a new admin account or resets the password of an
// existing one.
func (a AdminUsers) CreateOrUpdate(attrs database.AdminUserAttrs) (*database.AdminUser, error) {
	username := strings.TrimSpace(attrs.Username)
	if username == "" || attrs.PasswordHash == "" {
		return nil, fmt.Errorf("username and password hash are required: %w", database.ErrInvalid)
	}

	if user := a.FindBy(username); user != nil {
		user.PasswordHash = attrs.PasswordHash

		if err := a.DB.Sql().Save(user).Error; err != nil {
			return nil, fmt.Errorf("error updating admin [%s]: %w", username, database.ClassifyError(err))
		}

		return user, nil
	}

	user := database.AdminUser{
		Username:     username,
		PasswordHash: attrs.PasswordHash,
	}

	if err := a.DB.Sql().Create(&user).Error; err != nil {
		return nil, fmt.Errorf("error creating admin [%s]: %w", username, database.ClassifyError(err))
	}

	return &user, nil
}
