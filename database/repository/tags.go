package repository

import (
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type Tags struct {
	DB *database.Connection
}

type TagWithCount struct {
	database.Tag
	WriteupsCount int64 `gorm:"column:writeups_count"`
}

func (t Tags) AllWithCounts() ([]TagWithCount, error) {
	var items []TagWithCount

	err := t.DB.Sql().
		Model(&database.Tag{}).
		Select("tags.*, COUNT(writeups.id) AS writeups_count").
		Joins("LEFT JOIN writeup_tags ON writeup_tags.tag_id = tags.id").
		Joins("LEFT JOIN writeups ON writeups.id = writeup_tags.writeup_id AND writeups.is_published = ?", true).
		Group("tags.id").
		Order("tags.name asc").
		Scan(&items).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return items, nil
}

func (t Tags) FindBy(slug string) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}

func (t Tags) CreateMany(items []database.Tag) error {
	return database.ClassifyError(t.DB.Sql().Create(&items).Error)
}
