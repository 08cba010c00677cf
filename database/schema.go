package database

import (
	"fmt"
	"slices"
)

// GetSchemaTables lists the tables in dependency order: parents first.
func GetSchemaTables() []string {
	return []string{
		"profiles",
		"skills",
		"experiences",
		"projects",
		"certifications",
		"contact_messages",
		"categories",
		"tags",
		"writeups",
		"writeup_tags",
		"writeup_images",
		"tools",
		"admin_users",
	}
}

func GetModels() []any {
	return []any{
		&Profile{},
		&Skill{},
		&Experience{},
		&Project{},
		&Certification{},
		&ContactMessage{},
		&Category{},
		&Tag{},
		&WriteUp{},
		&WriteUpImage{},
		&Tool{},
		&AdminUser{},
	}
}

func isValidTable(seed string) bool {
	return slices.Contains(GetSchemaTables(), seed)
}

// Migrate creates or updates every table, including the writeup_tags join
// table.
func (c *Connection) Migrate() error {
	if err := c.driver.AutoMigrate(GetModels()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}
