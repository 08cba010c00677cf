package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type ProfileSeed struct {
	db *database.Connection
}

func MakeProfileSeed(db *database.Connection) *ProfileSeed {
	return &ProfileSeed{
		db: db,
	}
}

const profileBio = `Desarrollador Android especializado en Kotlin y Jetpack Compose con experiencia en el desarrollo de aplicaciones móviles robustas y escalables.

Actualmente en transición hacia la Ciberseguridad Ofensiva, enfocándome en Red Team Operations y Penetration Testing. Estudiante avanzado de Licenciatura en Ciberdefensa en UNDEF.

Mi experiencia incluye trabajo en el Polo Científico Tecnológico y empresas como Push Software, donde he desarrollado soluciones tecnológicas innovadoras combinando desarrollo móvil con principios de seguridad.

Apasionado por la investigación de vulnerabilidades, CTFs y el aprendizaje continuo en el campo de la ciberseguridad.`

func (s ProfileSeed) Create() (*database.Profile, error) {
	profile := database.Profile{
		Name:        "Matías Britez",
		Title:       "Técnico en Programación | Cybersecurity Specialist",
		Bio:         profileBio,
		Email:       "matias.britez@example.com",
		LinkedinURL: "https://linkedin.com/in/matiasbritez",
		GithubURL:   "https://github.com/matiasbritez",
		TwitterURL:  "https://twitter.com/matiasbritez",
	}

	result := s.db.Sql().Create(&profile)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding profile: %s", result.Error)
	}

	return &profile, nil
}
