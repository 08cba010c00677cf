package queries

import (
	"github.com/Matias-sh/mi-portafolio/database"
	"gorm.io/gorm"
)

func ApplyProjectFilters(filters ProjectFilters, query *gorm.DB) {
	if filters.OnlyFeatured() {
		query.Where("projects.is_featured = ?", true)
	}
}

// ApplyWriteUpFilters AND-s every present filter onto query.
func ApplyWriteUpFilters(filters WriteUpFilters, query *gorm.DB) {
	if category := filters.GetCategory(); category != "" {
		query.Where(
			"writeups.category_id IN (?)",
			query.Session(&gorm.Session{NewDB: true}).
				Model(&database.Category{}).
				Select("id").
				Where("slug = ?", category),
		)
	}

	if platform := filters.GetPlatform(); platform != "" {
		query.Where("writeups.platform = ?", platform)
	}

	if difficulty := filters.GetDifficulty(); difficulty != "" {
		query.Where("writeups.difficulty = ?", difficulty)
	}

	if filters.OnlyFeatured() {
		query.Where("writeups.is_featured = ?", true)
	}
}

func ApplyToolFilters(filters ToolFilters, query *gorm.DB) {
	if category := filters.GetCategory(); category != "" {
		query.Where("tools.category = ?", category)
	}
}
