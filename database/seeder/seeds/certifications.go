package seeds

import (
	"fmt"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type CertificationsSeed struct {
	db *database.Connection
}

func MakeCertificationsSeed(db *database.Connection) *CertificationsSeed {
	return &CertificationsSeed{
		db: db,
	}
}

func (s CertificationsSeed) Create() ([]database.Certification, error) {
	certifications := []database.Certification{
		{
			Name:        "Técnico Superior en Desarrollo de Software",
			Issuer:      "Instituto Tecnológico Superior",
			IssueDate:   dayPtr(2021, time.December, 15),
			Description: "Título técnico en desarrollo de software con especialización en programación orientada a objetos y desarrollo web.",
		},
		{
			Name:          "Android Developer Course",
			Issuer:        "Google Developers",
			IssueDate:     dayPtr(2022, time.March, 20),
			CredentialURL: "https://developers.google.com/certification",
			Description:   "Certificación oficial en desarrollo Android con enfoque en Kotlin y arquitecturas modernas.",
		},
		{
			Name:          "Cybersecurity Fundamentals",
			Issuer:        "Cisco Networking Academy",
			IssueDate:     dayPtr(2023, time.August, 10),
			CredentialURL: "https://cisco.netacad.com",
			Description:   "Fundamentos de ciberseguridad, incluyendo análisis de amenazas y técnicas de protección.",
		},
	}

	result := s.db.Sql().Create(&certifications)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding certifications: %s", result.Error)
	}

	return certifications, nil
}
