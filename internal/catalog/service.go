package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when a SKU is missing its code or name.
var ErrMissingFields = errors.New("sku code and name are required")

// Service provides catalog management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new catalog Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create registers a new SKU. Code and name are required; an empty
// category defaults to "General".
func (s *Service) Create(code, name, category string, originalPrice decimal.Decimal) (*SKU, error) {
	if code == "" || name == "" {
		return nil, ErrMissingFields
	}
	if category == "" {
		category = "General"
	}

	sku := &SKU{
		ID:            uuid.NewString(),
		Code:          code,
		Name:          name,
		Category:      category,
		OriginalPrice: originalPrice,
		CreatedAt:     time.Now(),
	}

	if err := s.storage.Set(sku); err != nil {
		s.logger.Error("failed to save sku", zap.String("sku_code", code), zap.Error(err))
		return nil, fmt.Errorf("failed to save sku: %w", err)
	}

	s.logger.Info("sku created", zap.String("sku_id", sku.ID), zap.String("sku_code", sku.Code))
	return sku, nil
}

// Update replaces the mutable fields of an existing SKU.
func (s *Service) Update(id, code, name, category string, originalPrice decimal.Decimal) (*SKU, error) {
	if code == "" || name == "" {
		return nil, ErrMissingFields
	}
	sku, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	sku.Code = code
	sku.Name = name
	if category != "" {
		sku.Category = category
	}
	sku.OriginalPrice = originalPrice

	if err := s.storage.Set(sku); err != nil {
		s.logger.Error("failed to update sku", zap.String("sku_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update sku: %w", err)
	}
	return sku, nil
}

// Delete removes one SKU. Historical ledger entries referencing it are
// left in place and resolved best-effort by the reporting layer.
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("sku deleted", zap.String("sku_id", id))
	return nil
}

// DeleteBatch removes the listed SKUs, skipping unknown IDs, and reports
// how many were removed.
func (s *Service) DeleteBatch(ids []string) int {
	removed := s.storage.DeleteBatch(ids)
	s.logger.Info("sku batch deleted", zap.Int("requested", len(ids)), zap.Int("removed", removed))
	return removed
}

// List returns all SKUs, newest first.
func (s *Service) List() ([]*SKU, error) {
	return s.storage.GetAll()
}

// Read returns one SKU by ID.
func (s *Service) Read(id string) (*SKU, error) {
	return s.storage.Read(id)
}
