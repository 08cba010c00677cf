package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type WriteUpsSeed struct {
	db *database.Connection
}

func MakeWriteUpsSeed(db *database.Connection) *WriteUpsSeed {
	return &WriteUpsSeed{
		db: db,
	}
}

func pickTags(tags []database.Tag, slugs ...string) []database.Tag {
	var picked []database.Tag

	for _, tag := range tags {
		for _, slug := range slugs {
			if tag.Slug == slug {
				picked = append(picked, tag)
			}
		}
	}

	return picked
}

// Create stores a sample published write-up under the first category.
func (s WriteUpsSeed) Create(categories []database.Category, tags []database.Tag) ([]database.WriteUp, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("error seeding writeups: categories are required")
	}

	writeups := []database.WriteUp{
		{
			Title:      "HackTheBox: Lame",
			Subtitle:   "Samba usermap_script hasta root",
			CategoryID: &categories[0].ID,
			Tags:       pickTags(tags, "rce", "metasploit", "nmap"),
			Platform:   "hackthebox",
			Difficulty: "easy",
			Summary:    "Enumeración con Nmap y explotación de CVE-2007-2447 en Samba para obtener una shell como root.",
			Content: "## Enumeración\n\n```\nnmap -sC -sV -oA lame 10.10.10.3\n```\n\n" +
				"Samba 3.0.20 expone el parámetro `username map script`.\n\n" +
				"## Explotación\n\nEl módulo `exploit/multi/samba/usermap_script` devuelve una shell como root.",
			IsFeatured:  true,
			IsPublished: true,
			ReadingTime: 8,
		},
	}

	result := s.db.Sql().Create(&writeups)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding writeups: %s", result.Error)
	}

	return writeups, nil
}
