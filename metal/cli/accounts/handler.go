package accounts

import (
	"fmt"
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/auth"
	"github.com/Matias-sh/mi-portafolio/pkg/cli"
)

// CreateAccount stores a new admin or resets the password of an existing one.
func (h Handler) CreateAccount(username, password string) error {
	username = strings.TrimSpace(username)

	if len(username) < UsernameMinLength {
		return fmt.Errorf("the username [%s] must have at least %d characters", username, UsernameMinLength)
	}

	if len(password) < PasswordMinLength {
		return fmt.Errorf("the password must have at least %d characters", PasswordMinLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash the password of [%s]: %v", username, err)
	}

	item, err := h.Admins.CreateOrUpdate(database.AdminUserAttrs{
		Username:     username,
		PasswordHash: hash,
	})

	if err != nil {
		return fmt.Errorf("failed to store admin [%s]: %v", username, err)
	}

	cli.Successln("\nThe admin account has been saved successfully!\n")
	cli.Blueln("   > " + fmt.Sprintf("Username: %s", item.Username))
	cli.Blueln("   > " + fmt.Sprintf("Created at: %s", item.CreatedAt.Format("2006-01-02 15:04:05")))
	fmt.Println(" ")

	return nil
}

// IssueToken prints a bearer token for an existing admin.
func (h Handler) IssueToken(username string) (string, error) {
	item := h.Admins.FindBy(username)

	if item == nil {
		return "", fmt.Errorf("the given admin [%s] was not found", username)
	}

	token, expiresAt, err := h.JWT.Generate(item.Username)
	if err != nil {
		return "", fmt.Errorf("could not sign a token for [%s]: %v", item.Username, err)
	}

	cli.Successln("\nThe token was generated successfully.")
	cli.Magentaln("   > " + fmt.Sprintf("Token: %s", token))
	cli.Cyanln("   > " + fmt.Sprintf("Expires at: %s", expiresAt.UTC().Format("2006-01-02 15:04:05 MST")))
	fmt.Println(" ")

	return token, nil
}
