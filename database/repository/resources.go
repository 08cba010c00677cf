package repository

import (
	"fmt"
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListParams drives a table-agnostic admin listing. Column names come from
// the static admin schema, never from the request.
type ListParams struct {
	Search       string
	SearchFields []string
	Filters      map[string]any
	Ordering     []string
	Preloads     []string
	Paginate     pagination.Paginate
}

// Resources executes the admin CRUD operations on any model.
type Resources struct {
	DB *database.Connection
}

// List fills dest (a pointer to a slice of model) with one page of rows and
// returns the total row count before paging.
func (r Resources) List(model any, dest any, params ListParams) (int64, error) {
	var total int64

	query := r.DB.Sql().Model(model)

	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" && len(params.SearchFields) > 0 {
		pattern := "%" + search + "%"
		group := r.DB.Sql().Session(&gorm.Session{NewDB: true})

		for _, field := range params.SearchFields {
			group = group.Or("LOWER(?) LIKE ?", clause.Column{Name: field}, pattern)
		}

		query.Where(group)
	}

	if len(params.Filters) > 0 {
		query.Where(params.Filters)
	}

	if err := pagination.Count(&total, query, r.DB.GetSession(), ""); err != nil {
		return 0, fmt.Errorf("count %T: %w", model, database.ClassifyError(err))
	}

	for _, field := range params.Ordering {
		query.Order(OrderColumn(field))
	}

	query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	for _, preload := range params.Preloads {
		query.Preload(preload)
	}

	err := query.
		Offset(params.Paginate.Offset()).
		Limit(params.Paginate.Limit).
		Find(dest).Error

	if err != nil {
		return 0, fmt.Errorf("list %T: %w", model, database.ClassifyError(err))
	}

	return total, nil
}

// OrderColumn turns "-published_at" into a descending order on published_at.
func OrderColumn(field string) clause.OrderByColumn {
	desc := strings.HasPrefix(field, "-")

	return clause.OrderByColumn{
		Column: clause.Column{Name: strings.TrimPrefix(field, "-")},
		Desc:   desc,
	}
}

// Find loads the row with id into model.
func (r Resources) Find(model any, id uint64, preloads []string) error {
	query := r.DB.Sql()

	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	if err := query.First(model, id).Error; err != nil {
		return database.ClassifyError(err)
	}

	return nil
}

// Create inserts model, running its BeforeCreate hook.
func (r Resources) Create(model any) error {
	return database.ClassifyError(r.DB.Sql().Omit(clause.Associations).Create(model).Error)
}

// Update saves every column of an already loaded model. Associations are
// managed through ReplaceAssociation.
func (r Resources) Update(model any) error {
	return database.ClassifyError(r.DB.Sql().Omit(clause.Associations).Save(model).Error)
}

// ReplaceAssociation swaps the members of a many2many association.
func (r Resources) ReplaceAssociation(model any, name string, values any) error {
	return database.ClassifyError(r.DB.Sql().Model(model).Association(name).Replace(values))
}

// Delete removes an already loaded model so its BeforeDelete hook sees the
// primary key.
func (r Resources) Delete(model any) error {
	result := r.DB.Sql().Delete(model)

	if result.Error != nil {
		return database.ClassifyError(result.Error)
	}

	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}

	return nil
}

// BulkUpdate sets column to value on every row whose id is listed.
func (r Resources) BulkUpdate(model any, ids []uint64, column string, value any) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.DB.Sql().
		Model(model).
		Where("id IN ?", ids).
		UpdateColumn(column, value)

	if result.Error != nil {
		return 0, fmt.Errorf("bulk update %s: %w", column, database.ClassifyError(result.Error))
	}

	return result.RowsAffected, nil
}

// Tags loads the tags with the given ids, failing when any is unknown.
func (r Resources) Tags(ids []uint64) ([]database.Tag, error) {
	var tags []database.Tag

	if len(ids) == 0 {
		return tags, nil
	}

	if err := r.DB.Sql().Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, database.ClassifyError(err)
	}

	if len(tags) != len(uniqueIDs(ids)) {
		return nil, fmt.Errorf("unknown tag ids %v: %w", ids, database.ErrInvalid)
	}

	return tags, nil
}

func uniqueIDs(ids []uint64) map[uint64]struct{} {
	seen := make(map[uint64]struct{}, len(ids))

	for _, id := range ids {
		seen[id] = struct{}{}
	}

	return seen
}
