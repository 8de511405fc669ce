package promo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingName is returned when a promotion has no name.
var ErrMissingName = errors.New("promotion name is required")

// ErrInvalidStatus is returned for a status outside DRAFT/ACTIVE/COMPLETED.
var ErrInvalidStatus = errors.New("invalid promotion status")

// ErrInvalidType is returned for a type outside PROMO/PRICE_DROP.
var ErrInvalidType = errors.New("invalid promotion type")

// Service provides promotion management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new promotion Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

func validate(name string, typ Type, status Status) error {
	if name == "" {
		return ErrMissingName
	}
	if typ != TypePromo && typ != TypePriceDrop {
		return fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	switch status {
	case StatusDraft, StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}

// Create registers a new campaign. Item SKU references are accepted as
// given; stale references are tolerated and skipped downstream.
func (s *Service) Create(name string, typ Type, startDate, endDate string, status Status, description string, items []Item) (*Promotion, error) {
	if err := validate(name, typ, status); err != nil {
		return nil, err
	}

	p := &Promotion{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        typ,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		Description: description,
		Items:       items,
		CreatedAt:   time.Now(),
	}

	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to save promotion", zap.String("promotion_name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to save promotion: %w", err)
	}

	s.logger.Info("promotion created",
		zap.String("promotion_id", p.ID),
		zap.String("status", string(status)),
		zap.Int("items", len(items)),
	)
	return p, nil
}

// Update replaces a campaign's definition.
func (s *Service) Update(id, name string, typ Type, startDate, endDate string, status Status, description string, items []Item) (*Promotion, error) {
	if err := validate(name, typ, status); err != nil {
		return nil, err
	}
	p, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	p.Name = name
	p.Type = typ
	p.StartDate = startDate
	p.EndDate = endDate
	p.Status = status
	p.Description = description
	p.Items = items

	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to update promotion", zap.String("promotion_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}
	return p, nil
}

// Delete removes one campaign. Ledger entries referencing it remain and
// drop out of reporting views best-effort.
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("promotion deleted", zap.String("promotion_id", id))
	return nil
}

// List returns all campaigns, newest first.
func (s *Service) List() ([]*Promotion, error) {
	return s.storage.GetAll()
}

// Read returns one campaign by ID.
func (s *Service) Read(id string) (*Promotion, error) {
	return s.storage.Read(id)
}
