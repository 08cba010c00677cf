package queries

import (
	"strings"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

func sanitiseString(seed string) string {
	return strings.TrimSpace(seed)
}

// ProjectFilters narrows the public project list.
type ProjectFilters struct {
	Featured string
}

// OnlyFeatured is true when the raw flag case-insensitively equals "true".
func (f ProjectFilters) OnlyFeatured() bool {
	return portal.NewStringable(f.Featured).IsTrue()
}

type WriteUpFilters struct {
	Category   string
	Platform   string
	Difficulty string
	Featured   string
}

func (f WriteUpFilters) GetCategory() string {
	return sanitiseString(f.Category)
}

func (f WriteUpFilters) GetPlatform() string {
	return sanitiseString(f.Platform)
}

func (f WriteUpFilters) GetDifficulty() string {
	return sanitiseString(f.Difficulty)
}

func (f WriteUpFilters) OnlyFeatured() bool {
	return portal.NewStringable(f.Featured).IsTrue()
}

type ToolFilters struct {
	Category string
}

func (f ToolFilters) GetCategory() string {
	return sanitiseString(f.Category)
}
