package seeds

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
)

func testConnection(t *testing.T) *database.Connection {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), database.NewGormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db)
}

func setupSeeder(t *testing.T) *Seeder {
	e := &env.Environment{App: env.AppEnvironment{Type: "local"}}
	seeder := MakeSeeder(testConnection(t), e)

	if err := seeder.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return seeder
}

func TestSeederWorkflow(t *testing.T) {
	seeder := setupSeeder(t)

	if _, err := seeder.SeedProfile(); err != nil {
		t.Fatalf("profile err: %v", err)
	}

	skills, err := seeder.SeedSkills()
	if err != nil || len(skills) != 18 {
		t.Fatalf("skills err: %v (%d)", err, len(skills))
	}

	experiences, err := seeder.SeedExperiences()
	if err != nil || len(experiences) != 3 {
		t.Fatalf("experiences err: %v (%d)", err, len(experiences))
	}

	projects, err := seeder.SeedProjects()
	if err != nil || len(projects) != 4 {
		t.Fatalf("projects err: %v (%d)", err, len(projects))
	}

	certifications, err := seeder.SeedCertifications()
	if err != nil || len(certifications) != 3 {
		t.Fatalf("certifications err: %v (%d)", err, len(certifications))
	}

	categories, err := seeder.SeedCategories()
	if err != nil || len(categories) != 5 {
		t.Fatalf("categories err: %v (%d)", err, len(categories))
	}

	tags, err := seeder.SeedTags()
	if err != nil || len(tags) != 16 {
		t.Fatalf("tags err: %v (%d)", err, len(tags))
	}

	tools, err := seeder.SeedTools()
	if err != nil || len(tools) != 5 {
		t.Fatalf("tools err: %v (%d)", err, len(tools))
	}

	writeups, err := seeder.SeedWriteUps(categories, tags)
	if err != nil || len(writeups) != 1 {
		t.Fatalf("writeups err: %v", err)
	}

	if categories[0].Slug != "web-exploitation" || tags[0].Slug != "sql-injection" {
		t.Fatalf("unexpected derived slugs %s %s", categories[0].Slug, tags[0].Slug)
	}

	var links int64
	seeder.dbConn.Sql().Table("writeup_tags").Count(&links)

	if links != 3 {
		t.Fatalf("expected 3 writeup tag links, got %d", links)
	}
}

func TestSeedWriteUpsRequiresCategories(t *testing.T) {
	seeder := setupSeeder(t)

	if _, err := seeder.SeedWriteUps(nil, nil); err == nil {
		t.Fatalf("expected error without categories")
	}
}

func TestTruncateRefusedInProduction(t *testing.T) {
	e := &env.Environment{App: env.AppEnvironment{Type: "production"}}
	seeder := MakeSeeder(testConnection(t), e)

	if err := seeder.TruncateDB(); err == nil {
		t.Fatalf("expected production truncate to be refused")
	}
}
