package repository

import (
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

type CategoryWithCount struct {
	database.Category
	WriteupsCount int64 `gorm:"column:writeups_count"`
}

// AllWithCounts lists categories by name with the number of published
// write-ups in each, computed in one grouped query.
func (c Categories) AllWithCounts() ([]CategoryWithCount, error) {
	var items []CategoryWithCount

	err := c.DB.Sql().
		Model(&database.Category{}).
		Select("categories.*, COUNT(writeups.id) AS writeups_count").
		Joins("LEFT JOIN writeups ON writeups.category_id = categories.id AND writeups.is_published = ?", true).
		Group("categories.id").
		Order("categories.name asc").
		Scan(&items).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return items, nil
}

func (c Categories) FindBy(slug string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}

func (c Categories) CreateMany(items []database.Category) error {
	return database.ClassifyError(c.DB.Sql().Create(&items).Error)
}
