package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"gorm.io/gorm"
)

// ErrNoOwner is returned when a repository is used without an authenticated caller
var ErrNoOwner = errors.New("no authenticated owner in context")

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortConfig holds sorting configuration for list queries
type SortConfig struct {
	Field string
	Order SortOrder
}

// BuildOrderClause builds the ORDER BY clause from a whitelist of columns.
// Unknown fields fall back to defaultColumn.
func BuildOrderClause(config SortConfig, fieldMap map[string]string, defaultColumn string) string {
	column, ok := fieldMap[config.Field]
	if !ok {
		column = defaultColumn
	}

	order := "DESC"
	if config.Order == SortOrderAsc {
		order = "ASC"
	}

	return column + " " + order
}

// OwnerID returns the authenticated caller's id
func OwnerID(ctx context.Context) (uuid.UUID, error) {
	user, ok := auth.FromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNoOwner
	}
	return user.UserID, nil
}

// ApplyOwnerFilter restricts a query to rows owned by the caller.
// Without a caller the query matches nothing.
func ApplyOwnerFilter(ctx context.Context, query *gorm.DB) *gorm.DB {
	return ApplyOwnerFilterWithColumn(ctx, query, "user_id")
}

// ApplyOwnerFilterWithColumn applies the owner filter using a qualified column name
func ApplyOwnerFilterWithColumn(ctx context.Context, query *gorm.DB, column string) *gorm.DB {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return query.Where("1 = 0")
	}
	return query.Where(column+" = ?", ownerID)
}

// likePattern builds a case-insensitive LIKE pattern; callers compare against LOWER(column)
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

// saveOwned writes every column of an owned record without ever inserting.
// A record that does not exist or belongs to someone else yields gorm.ErrRecordNotFound.
func saveOwned(ctx context.Context, tx *gorm.DB, model interface{}) error {
	result := ApplyOwnerFilter(ctx, tx.Model(model)).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
