package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
)

type Seeder struct {
	dbConn      *database.Connection
	environment *env.Environment
}

func MakeSeeder(dbConnection *database.Connection, environment *env.Environment) *Seeder {
	return &Seeder{
		dbConn:      dbConnection,
		environment: environment,
	}
}

func (s *Seeder) TruncateDB() error {
	if !s.environment.App.AllowsTruncate() {
		return fmt.Errorf("cannot truncate db at the seeder level")
	}

	truncate := database.NewTruncate(s.dbConn, s.environment)

	return truncate.Execute()
}

func (s *Seeder) Migrate() error {
	return s.dbConn.Migrate()
}

func (s *Seeder) SeedProfile() (*database.Profile, error) {
	return MakeProfileSeed(s.dbConn).Create()
}

func (s *Seeder) SeedSkills() ([]database.Skill, error) {
	return MakeSkillsSeed(s.dbConn).Create()
}

func (s *Seeder) SeedExperiences() ([]database.Experience, error) {
	return MakeExperiencesSeed(s.dbConn).Create()
}

func (s *Seeder) SeedProjects() ([]database.Project, error) {
	return MakeProjectsSeed(s.dbConn).Create()
}

func (s *Seeder) SeedCertifications() ([]database.Certification, error) {
	return MakeCertificationsSeed(s.dbConn).Create()
}

func (s *Seeder) SeedCategories() ([]database.Category, error) {
	return MakeCategoriesSeed(s.dbConn).Create()
}

func (s *Seeder) SeedTags() ([]database.Tag, error) {
	return MakeTagsSeed(s.dbConn).Create()
}

func (s *Seeder) SeedTools() ([]database.Tool, error) {
	return MakeToolsSeed(s.dbConn).Create()
}

func (s *Seeder) SeedWriteUps(categories []database.Category, tags []database.Tag) ([]database.WriteUp, error) {
	return MakeWriteUpsSeed(s.dbConn).Create(categories, tags)
}
