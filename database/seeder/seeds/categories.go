package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type CategoriesSeed struct {
	db *database.Connection
}

func MakeCategoriesSeed(db *database.Connection) *CategoriesSeed {
	return &CategoriesSeed{
		db: db,
	}
}

func (s CategoriesSeed) Create() ([]database.Category, error) {
	categories := []database.Category{
		{Name: "Web Exploitation", Color: "#ef4444", Icon: "globe", Description: "Vulnerabilidades en aplicaciones web"},
		{Name: "Binary Exploitation", Color: "#8b5cf6", Icon: "cpu", Description: "Explotación de binarios y buffer overflows"},
		{Name: "Cryptography", Color: "#06b6d4", Icon: "key", Description: "Criptografía y esteganografía"},
		{Name: "Forensics", Color: "#10b981", Icon: "search", Description: "Análisis forense digital"},
		{Name: "Network Security", Color: "#f59e0b", Icon: "wifi", Description: "Seguridad en redes y protocolos"},
	}

	result := s.db.Sql().Create(&categories)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding categories: %s", result.Error)
	}

	return categories, nil
}
