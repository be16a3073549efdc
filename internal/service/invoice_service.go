package service

import (
	"context"
	"fmt"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	logger      *zap.Logger
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo, logger: logger}
}

// List returns the caller's invoices, newest first
func (s *InvoiceService) List(ctx context.Context) ([]domain.InvoiceDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", mapRepoError(err, ErrNotFound))
	}

	dtos := make([]domain.InvoiceDTO, len(invoices))
	for i := range invoices {
		dtos[i] = mapper.ToInvoiceDTO(&invoices[i])
	}
	return dtos, nil
}
