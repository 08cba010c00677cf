package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type ToolsSeed struct {
	db *database.Connection
}

func MakeToolsSeed(db *database.Connection) *ToolsSeed {
	return &ToolsSeed{
		db: db,
	}
}

func (s ToolsSeed) Create() ([]database.Tool, error) {
	tools := []database.Tool{
		{Name: "Burp Suite", Category: "Web Testing", Description: "Plataforma integrada para testing de seguridad en aplicaciones web", OfficialURL: "https://portswigger.net/burp"},
		{Name: "Nmap", Category: "Network Scanner", Description: "Escáner de red para descubrimiento de hosts y servicios", OfficialURL: "https://nmap.org", IsFree: true},
		{Name: "Metasploit", Category: "Exploitation", Description: "Framework de penetration testing y desarrollo de exploits", OfficialURL: "https://metasploit.com"},
		{Name: "Wireshark", Category: "Network Analysis", Description: "Analizador de protocolos de red", OfficialURL: "https://wireshark.org", IsFree: true},
		{Name: "John the Ripper", Category: "Password Cracking", Description: "Herramienta para cracking de passwords", OfficialURL: "https://openwall.com/john/", GithubURL: "https://github.com/openwall/john", IsFree: true},
	}

	result := s.db.Sql().Create(&tools)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding tools: %s", result.Error)
	}

	return tools, nil
}
