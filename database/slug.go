package database

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

// Slugify turns "Web Exploitation" into "web-exploitation".
func Slugify(value string) string {
	return portal.NewStringable(value).ToSlug()
}

func requireSlug(slug, entity string) error {
	if slug == "" {
		return fmt.Errorf("%s slug cannot be derived from an empty title: %w", entity, ErrInvalid)
	}

	return nil
}
