package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// StatisticsService aggregates invoice figures.
type StatisticsService interface {
	GetYearStatistics(ctx context.Context, year int, topClients int) (*domain.YearStatistics, error)
}
