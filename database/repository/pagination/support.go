package pagination

import "gorm.io/gorm"

// Count runs a COUNT over a clone of query so the caller can keep paging it.
func Count(numItems *int64, query *gorm.DB, session *gorm.Session, distinct string) error {
	sql := query.Session(session)

	if distinct != "" {
		sql = sql.Distinct(distinct)
	}

	return sql.Count(numItems).Error
}
