package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
)

type Tools struct {
	DB *database.Connection
}

func (t Tools) All(filters queries.ToolFilters) ([]database.Tool, error) {
	var tools []database.Tool

	query := t.DB.Sql().Model(&database.Tool{})
	queries.ApplyToolFilters(filters, query)

	if err := query.Order("tools.category asc").Order("tools.name asc").Find(&tools).Error; err != nil {
		return nil, database.ClassifyError(err)
	}

	return tools, nil
}

func (t Tools) CreateMany(tools []database.Tool) error {
	return database.ClassifyError(t.DB.Sql().Create(&tools).Error)
}
