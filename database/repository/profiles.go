package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
)

type Profiles struct {
	DB *database.Connection
}

// Current returns the site owner's profile: the row with the lowest id.
func (p Profiles) Current() (*database.Profile, error) {
	var profile database.Profile

	if err := p.DB.Sql().Order("id asc").First(&profile).Error; err != nil {
		return nil, database.ClassifyError(err)
	}

	return &profile, nil
}

func (p Profiles) Count() (int64, error) {
	return count(p.DB, &database.Profile{})
}

func (p Profiles) Create(profile *database.Profile) error {
	return database.ClassifyError(p.DB.Sql().Create(profile).Error)
}
