package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoValidRows is returned when a CSV import yields no usable SKUs.
var ErrNoValidRows = errors.New("no valid skus found in file")

// ImportCSV parses a CSV payload of `code,name,category,price` rows and
// inserts the valid ones as a single batch. The first line is treated as a
// header when it contains "code" (case-insensitive). Rows with fewer than
// three fields or missing code/name are skipped; a missing or non-numeric
// price becomes 0, an empty category becomes "General".
func (s *Service) ImportCSV(text string) ([]*SKU, error) {
	lines := strings.Split(text, "\n")

	start := 0
	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "code") {
		start = 1
	}

	var skus []*SKU
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}

		code := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		category := strings.TrimSpace(parts[2])
		if code == "" || name == "" {
			continue
		}
		if category == "" {
			category = "General"
		}

		price := decimal.Zero
		if len(parts) > 3 {
			if parsed, err := decimal.NewFromString(strings.TrimSpace(parts[3])); err == nil {
				price = parsed
			}
		}

		skus = append(skus, &SKU{
			ID:            uuid.NewString(),
			Code:          code,
			Name:          name,
			Category:      category,
			OriginalPrice: price,
			CreatedAt:     time.Now(),
		})
	}

	if len(skus) == 0 {
		return nil, ErrNoValidRows
	}

	if err := s.storage.SetBatch(skus); err != nil {
		s.logger.Error("failed to import sku batch", zap.Int("count", len(skus)), zap.Error(err))
		return nil, fmt.Errorf("failed to import skus: %w", err)
	}

	s.logger.Info("sku csv imported", zap.Int("count", len(skus)))
	return skus, nil
}
