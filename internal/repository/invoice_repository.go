package repository

import (
	"context"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// List returns the caller's invoices, newest billing period first
func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Order("period_start DESC").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}
