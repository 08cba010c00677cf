package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
)

type Certifications struct {
	DB *database.Connection
}

// All lists certifications by issue date, newest first and undated last.
func (c Certifications) All() ([]database.Certification, error) {
	var items []database.Certification

	err := c.DB.Sql().
		Order("CASE WHEN issue_date IS NULL THEN 1 ELSE 0 END").
		Order("issue_date desc").
		Order("id asc").
		Find(&items).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return items, nil
}

func (c Certifications) CreateMany(items []database.Certification) error {
	return database.ClassifyError(c.DB.Sql().Create(&items).Error)
}
