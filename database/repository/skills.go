package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
)

type Skills struct {
	DB *database.Connection
}

// All lists skills by proficiency (highest first), then name.
func (s Skills) All() ([]database.Skill, error) {
	var skills []database.Skill

	err := s.DB.Sql().
		Order("proficiency desc").
		Order("name asc").
		Find(&skills).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return skills, nil
}

func (s Skills) Count() (int64, error) {
	return count(s.DB, &database.Skill{})
}

func (s Skills) CreateMany(skills []database.Skill) error {
	return database.ClassifyError(s.DB.Sql().Create(&skills).Error)
}
