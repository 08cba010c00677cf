package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
)

type Projects struct {
	DB *database.Connection
}

// Active lists the visible projects, newest first.
func (p Projects) Active(filters queries.ProjectFilters) ([]database.Project, error) {
	var projects []database.Project

	query := p.DB.Sql().
		Model(&database.Project{}).
		Where("projects.is_active = ?", true)

	queries.ApplyProjectFilters(filters, query)

	if err := query.Order("projects.created_at desc").Order("projects.id desc").Find(&projects).Error; err != nil {
		return nil, database.ClassifyError(err)
	}

	return projects, nil
}

// FindActiveBy matches the slug exactly. A missing or inactive project is
// database.ErrNotFound.
func (p Projects) FindActiveBy(slug string) (*database.Project, error) {
	project := database.Project{}

	err := p.DB.Sql().
		Where("slug = ?", slug).
		Where("is_active = ?", true).
		First(&project).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return &project, nil
}

func (p Projects) Count() (int64, error) {
	return count(p.DB, &database.Project{})
}

func (p Projects) Create(project *database.Project) error {
	return database.ClassifyError(p.DB.Sql().Create(project).Error)
}
