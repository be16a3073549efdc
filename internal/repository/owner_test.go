package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ownedModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name   string
	UserID uuid.UUID `gorm:"column:user_id"`
}

func setupMinimalTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestApplyOwnerFilter_WithUser(t *testing.T) {
	db := setupMinimalTestDB(t)
	_ = db.AutoMigrate(&ownedModel{})
	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{UserID: uuid.New()})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repository.ApplyOwnerFilter(ctx, tx.Model(&ownedModel{})).Find(&[]ownedModel{})
	})

	assert.Contains(t, sql, "user_id")
}

func TestApplyOwnerFilter_WithoutUserMatchesNothing(t *testing.T) {
	db := setupMinimalTestDB(t)
	_ = db.AutoMigrate(&ownedModel{})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repository.ApplyOwnerFilter(context.Background(), tx.Model(&ownedModel{})).Find(&[]ownedModel{})
	})

	assert.Contains(t, sql, "1 = 0")
}

func TestBuildOrderClause(t *testing.T) {
	fields := map[string]string{"company": "company"}

	assert.Equal(t, "company ASC", repository.BuildOrderClause(repository.SortConfig{Field: "company", Order: repository.SortOrderAsc}, fields, "created_at"))
	assert.Equal(t, "created_at DESC", repository.BuildOrderClause(repository.SortConfig{Field: "drop table", Order: repository.SortOrderDesc}, fields, "created_at"))
}
