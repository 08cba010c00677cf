package repository

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
	stdgorm "gorm.io/gorm"
)

type WriteUps struct {
	DB *database.Connection
}

func orderTagsByName(db *stdgorm.DB) *stdgorm.DB {
	return db.Order("tags.name asc")
}

// Published lists published write-ups, newest first, with their category and
// tags loaded.
func (w WriteUps) Published(filters queries.WriteUpFilters) ([]database.WriteUp, error) {
	var items []database.WriteUp

	query := w.DB.Sql().
		Model(&database.WriteUp{}).
		Where("writeups.is_published = ?", true)

	queries.ApplyWriteUpFilters(filters, query)

	err := query.
		Preload("Category").
		Preload("Tags", orderTagsByName).
		Order("writeups.published_at desc").
		Order("writeups.id desc").
		Find(&items).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return items, nil
}

// FindPublishedBy matches the slug exactly. Drafts and unknown slugs are
// database.ErrNotFound.
func (w WriteUps) FindPublishedBy(slug string) (*database.WriteUp, error) {
	writeup := database.WriteUp{}

	err := w.DB.Sql().
		Preload("Category").
		Preload("Tags", orderTagsByName).
		Preload("Images", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("writeup_images.id asc")
		}).
		Where("slug = ?", slug).
		Where("is_published = ?", true).
		First(&writeup).Error

	if err != nil {
		return nil, database.ClassifyError(err)
	}

	return &writeup, nil
}

// IncrementViews bumps views_count in a single statement so concurrent
// readers never lose an update. updated_at is left untouched.
func (w WriteUps) IncrementViews(writeup *database.WriteUp) error {
	result := w.DB.Sql().
		Model(&database.WriteUp{}).
		Where("id = ?", writeup.ID).
		UpdateColumn("views_count", stdgorm.Expr("views_count + ?", 1))

	if result.Error != nil {
		return fmt.Errorf("increment views for writeup [%d]: %w", writeup.ID, database.ClassifyError(result.Error))
	}

	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}

	writeup.ViewsCount++

	return nil
}

func (w WriteUps) Create(writeup *database.WriteUp) error {
	return database.ClassifyError(w.DB.Sql().Create(writeup).Error)
}
