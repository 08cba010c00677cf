package repository

import (
	"github.com/Matias-sh/mi-portafolio/database"
)

func count(db *database.Connection, model any) (int64, error) {
	var total int64

	if err := db.Sql().Model(model).Count(&total).Error; err != nil {
		return 0, database.ClassifyError(err)
	}

	return total, nil
}
