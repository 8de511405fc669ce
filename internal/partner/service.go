package partner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidType is returned for a partner type other than DEALER or TRADER.
var ErrInvalidType = errors.New("invalid partner type")

// ErrInvalidRate is returned when a discount rate is outside 0-100.
var ErrInvalidRate = errors.New("discount rate must be between 0 and 100")

// ErrMissingName is returned when a partner has no name.
var ErrMissingName = errors.New("partner name is required")

var hundred = decimal.NewFromInt(100)

// Service provides partner registry operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new partner Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

func validate(name string, typ Type, rate decimal.Decimal) error {
	if name == "" {
		return ErrMissingName
	}
	if typ != TypeDealer && typ != TypeTrader {
		return fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return ErrInvalidRate
	}
	return nil
}

// Create registers a new partner profile.
func (s *Service) Create(name string, typ Type, email, country string, rate decimal.Decimal) (*Partner, error) {
	if err := validate(name, typ, rate); err != nil {
		return nil, err
	}

	p := &Partner{
		ID:           uuid.NewString(),
		Name:         name,
		Type:         typ,
		Email:        email,
		Country:      country,
		DiscountRate: rate,
		CreatedAt:    time.Now(),
	}

	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to save partner", zap.String("partner_name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}

	s.logger.Info("partner created", zap.String("partner_id", p.ID), zap.String("type", string(typ)))
	return p, nil
}

// Update replaces a partner's profile fields. Rate edits apply to future
// claims only; already-submitted ledger entries keep their snapshot.
func (s *Service) Update(id, name string, typ Type, email, country string, rate decimal.Decimal) (*Partner, error) {
	if err := validate(name, typ, rate); err != nil {
		return nil, err
	}
	p, err := s.storage.Read(id)
	if err != nil {
		return nil, err
	}

	p.Name = name
	p.Type = typ
	p.Email = email
	p.Country = country
	p.DiscountRate = rate

	if err := s.storage.Set(p); err != nil {
		s.logger.Error("failed to update partner", zap.String("partner_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return p, nil
}

// Delete removes one partner profile.
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("partner deleted", zap.String("partner_id", id))
	return nil
}

// List returns all partners, newest first.
func (s *Service) List() ([]*Partner, error) {
	return s.storage.GetAll()
}

// Read returns one partner by ID.
func (s *Service) Read(id string) (*Partner, error) {
	return s.storage.Read(id)
}
