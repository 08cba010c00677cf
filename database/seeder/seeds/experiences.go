package seeds

import (
	"fmt"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
	"gorm.io/datatypes"
)

type ExperiencesSeed struct {
	db *database.Connection
}

func MakeExperiencesSeed(db *database.Connection) *ExperiencesSeed {
	return &ExperiencesSeed{
		db: db,
	}
}

func day(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func dayPtr(year int, month time.Month, d int) *datatypes.Date {
	value := day(year, month, d)

	return &value
}

func (s ExperiencesSeed) Create() ([]database.Experience, error) {
	experiences := []database.Experience{
		{
			Company:   "Polo Científico Tecnológico",
			Position:  "Desarrollador Django Backend",
			Location:  "Buenos Aires, Argentina",
			StartDate: day(2023, time.March, 1),
			EndDate:   dayPtr(2024, time.January, 31),
			Description: `Desarrollo de aplicaciones web robustas utilizando Django y Python para proyectos científicos y tecnológicos.

• Implementación de APIs RESTful para integración con sistemas externos
• Desarrollo de dashboards administrativos complejos
• Optimización de consultas de base de datos PostgreSQL
• Implementación de medidas de seguridad y autenticación
• Colaboración en equipo utilizando metodologías ágiles`,
			Technologies: "Django, Python, PostgreSQL, REST APIs, Git, Docker",
			CompanyURL:   "https://www.polo.gob.ar/",
		},
		{
			Company:   "Push Software",
			Position:  "Desarrollador Android",
			Location:  "Buenos Aires, Argentina",
			StartDate: day(2022, time.June, 1),
			EndDate:   dayPtr(2023, time.February, 28),
			Description: `Desarrollo de aplicaciones móviles Android utilizando Kotlin y arquitecturas modernas.

• Migración de aplicaciones legacy a Jetpack Compose
• Implementación de arquitectura MVVM con Clean Architecture
• Integración con APIs REST y GraphQL
• Optimización de rendimiento y gestión de memoria
• Testing unitario y de integración con JUnit y Espresso`,
			Technologies: "Kotlin, Android, Jetpack Compose, Room, Retrofit, MVVM",
			CompanyURL:   "https://pushsoftware.com/",
		},
		{
			Company:   "Orbita Push",
			Position:  "Desarrollador Junior Android",
			Location:  "Buenos Aires, Argentina",
			StartDate: day(2021, time.August, 1),
			EndDate:   dayPtr(2022, time.May, 31),
			Description: `Primer experiencia profesional en desarrollo móvil, enfocada en aprendizaje y crecimiento técnico.

• Desarrollo de features para aplicaciones existentes
• Corrección de bugs y mejoras de UI/UX
• Aprendizaje de mejores prácticas de desarrollo Android
• Participación en code reviews y pair programming
• Documentación técnica de componentes desarrollados`,
			Technologies: "Java, Android SDK, SQLite, REST APIs, Git",
			CompanyURL:   "#",
		},
	}

	result := s.db.Sql().Create(&experiences)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding experiences: %s", result.Error)
	}

	return experiences, nil
}
