package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type TagsSeed struct {
	db *database.Connection
}

func MakeTagsSeed(db *database.Connection) *TagsSeed {
	return &TagsSeed{
		db: db,
	}
}

func (s TagsSeed) Create() ([]database.Tag, error) {
	var tags []database.Tag

	names := []string{
		"SQL Injection", "XSS", "CSRF", "Buffer Overflow", "RCE", "LFI", "RFI",
		"Privilege Escalation", "Hash Cracking", "Steganography", "Memory Dump",
		"Packet Analysis", "Wireshark", "Metasploit", "Burp Suite", "Nmap",
	}

	for _, name := range names {
		tags = append(tags, database.Tag{Name: name})
	}

	result := s.db.Sql().Create(&tags)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding tags: %s", result.Error)
	}

	return tags, nil
}
