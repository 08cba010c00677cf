package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type SkillsSeed struct {
	db *database.Connection
}

func MakeSkillsSeed(db *database.Connection) *SkillsSeed {
	return &SkillsSeed{
		db: db,
	}
}

func (s SkillsSeed) Create() ([]database.Skill, error) {
	skills := []database.Skill{
		{Name: "OWASP Top 10", Category: "pentesting", Proficiency: 85, Icon: "shield-check", Description: "Conocimiento profundo de las vulnerabilidades web más críticas"},
		{Name: "Nmap", Category: "pentesting", Proficiency: 90, Icon: "radar", Description: "Escaneo de puertos y descubrimiento de servicios"},
		{Name: "Burp Suite", Category: "pentesting", Proficiency: 80, Icon: "bug", Description: "Análisis de aplicaciones web y API testing"},
		{Name: "Metasploit", Category: "pentesting", Proficiency: 75, Icon: "target", Description: "Framework de explotación y post-explotación"},
		{Name: "OSINT", Category: "pentesting", Proficiency: 85, Icon: "search", Description: "Recolección de información de fuentes abiertas"},
		{Name: "Social Engineering", Category: "pentesting", Proficiency: 70, Icon: "users", Description: "Técnicas de ingeniería social y phishing"},

		{Name: "Kotlin", Category: "mobile", Proficiency: 95, Icon: "smartphone", Description: "Desarrollo Android nativo con Kotlin"},
		{Name: "Jetpack Compose", Category: "mobile", Proficiency: 90, Icon: "layers", Description: "UI moderna y declarativa para Android"},
		{Name: "Android Architecture", Category: "mobile", Proficiency: 88, Icon: "building", Description: "MVVM, Clean Architecture, Repository Pattern"},
		{Name: "Room Database", Category: "mobile", Proficiency: 85, Icon: "database", Description: "Base de datos local SQLite para Android"},

		{Name: "Django", Category: "backend", Proficiency: 90, Icon: "server", Description: "Framework web de Python para desarrollo rápido"},
		{Name: "Python", Category: "backend", Proficiency: 92, Icon: "code", Description: "Programación backend y scripting"},
		{Name: "PostgreSQL", Category: "backend", Proficiency: 80, Icon: "database", Description: "Base de datos relacional avanzada"},
		{Name: "REST APIs", Category: "backend", Proficiency: 88, Icon: "api", Description: "Diseño e implementación de APIs RESTful"},

		{Name: "Git", Category: "tools", Proficiency: 90, Icon: "git-branch", Description: "Control de versiones y colaboración"},
		{Name: "Docker", Category: "tools", Proficiency: 75, Icon: "container", Description: "Containerización y deployment"},
		{Name: "Linux", Category: "tools", Proficiency: 85, Icon: "terminal", Description: "Administración de sistemas Linux"},
		{Name: "Kali Linux", Category: "tools", Proficiency: 80, Icon: "terminal", Description: "Distribución para pentesting"},
	}

	result := s.db.Sql().Create(&skills)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding skills: %s", result.Error)
	}

	return skills, nil
}
