package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
)

type Experiences struct {
	DB *database.Connection
}

func (e Experiences) All() ([]database.Experience, error) {
	var items []database.Experience

	if err := e.DB.Sql().Order("start_date desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, database.ClassifyError(err)
	}

	return items, nil
}

func (e Experiences) CreateMany(items []database.Experience) error {
	return database.ClassifyError(e.DB.Sql().Create(&items).Error)
}
