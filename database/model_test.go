package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
)

func TestMigrateCreatesEveryTable(t *testing.T) {
	conn := newMigratedConnection(t)

	for _, table := range database.GetSchemaTables() {
		if !conn.Sql().Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestSlugDerivation(t *testing.T) {
	conn := newMigratedConnection(t)

	category := database.Category{Name: "Web Exploitation"}
	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	if category.Slug != "web-exploitation" || category.Color != database.DefaultCategoryColor {
		t.Fatalf("unexpected category defaults %+v", category)
	}

	writeup := database.WriteUp{Title: "HTB: Lame", Platform: "hackthebox", Difficulty: "easy", Summary: "s", Content: "c", IsPublished: true}
	if err := conn.Sql().Create(&writeup).Error; err != nil {
		t.Fatalf("create writeup: %v", err)
	}

	if writeup.Slug != "htb-lame" || writeup.ReadingTime != database.DefaultReadingTime || writeup.PublishedAt.IsZero() {
		t.Fatalf("unexpected writeup defaults %+v", writeup)
	}

	explicit := database.Tag{Name: "Linux", Slug: "gnu-linux"}
	if err := conn.Sql().Create(&explicit).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	if explicit.Slug != "gnu-linux" {
		t.Fatalf("explicit slug must be kept, got %s", explicit.Slug)
	}
}

func TestEmptySlugIsRejected(t *testing.T) {
	conn := newMigratedConnection(t)

	err := conn.Sql().Create(&database.Project{Title: "!!!", ProjectType: "web"}).Error
	if !errors.Is(database.ClassifyError(err), database.ErrInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestDuplicateSlugIsConflict(t *testing.T) {
	conn := newMigratedConnection(t)

	if err := conn.Sql().Create(&database.Tag{Name: "SQL Injection"}).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	err := conn.Sql().Create(&database.Tag{Name: "sql injection"}).Error
	if !errors.Is(database.ClassifyError(err), database.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteCategoryNullsWriteUps(t *testing.T) {
	conn := newMigratedConnection(t)

	category := database.Category{Name: "Forensics"}
	conn.Sql().Create(&category)

	writeup := database.WriteUp{Title: "Memory dump", CategoryID: &category.ID, Platform: "custom", Difficulty: "medium", Summary: "s", Content: "c"}
	if err := conn.Sql().Create(&writeup).Error; err != nil {
		t.Fatalf("create writeup: %v", err)
	}

	if err := conn.Sql().Delete(&category).Error; err != nil {
		t.Fatalf("delete category: %v", err)
	}

	var reloaded database.WriteUp
	if err := conn.Sql().First(&reloaded, writeup.ID).Error; err != nil {
		t.Fatalf("writeup must survive category deletion: %v", err)
	}

	if reloaded.CategoryID != nil {
		t.Fatalf("expected category to be nulled, got %v", *reloaded.CategoryID)
	}
}

func TestDeleteWriteUpRemovesImagesAndTagLinks(t *testing.T) {
	conn := newMigratedConnection(t)

	tag := database.Tag{Name: "Linux"}
	conn.Sql().Create(&tag)

	writeup := database.WriteUp{
		Title:      "Box",
		Platform:   "hackthebox",
		Difficulty: "hard",
		Summary:    "s",
		Content:    "c",
		Tags:       []database.Tag{tag},
		Images:     []database.WriteUpImage{{Image: "writeups/gallery/1.png"}},
	}

	if err := conn.Sql().Create(&writeup).Error; err != nil {
		t.Fatalf("create writeup: %v", err)
	}

	if err := conn.Sql().Delete(&writeup).Error; err != nil {
		t.Fatalf("delete writeup: %v", err)
	}

	var images, links int64
	conn.Sql().Model(&database.WriteUpImage{}).Count(&images)
	conn.Sql().Table("writeup_tags").Count(&links)

	if images != 0 || links != 0 {
		t.Fatalf("expected cascade, got images=%d links=%d", images, links)
	}

	var tags int64
	conn.Sql().Model(&database.Tag{}).Count(&tags)
	if tags != 1 {
		t.Fatalf("tags must survive, got %d", tags)
	}
}

func TestPublishedAtIsKeptWhenProvided(t *testing.T) {
	conn := newMigratedConnection(t)
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	w := database.WriteUp{Title: "Dated", Platform: "custom", Difficulty: "easy", Summary: "s", Content: "c", PublishedAt: when}
	conn.Sql().Create(&w)

	if !w.PublishedAt.Equal(when) {
		t.Fatalf("expected published_at to be kept, got %v", w.PublishedAt)
	}
}
