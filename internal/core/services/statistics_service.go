package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/SscSPs/invoicing_app/internal/utils/invoicing"
	"github.com/shopspring/decimal"
)

type statisticsService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	clientRepo  portsrepo.ClientReader
}

// NewStatisticsService creates a service computing yearly invoicing figures.
func NewStatisticsService(invoiceRepo portsrepo.InvoiceReader, clientRepo portsrepo.ClientReader) portssvc.StatisticsService {
	return &statisticsService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

var _ portssvc.StatisticsService = (*statisticsService)(nil)

// GetYearStatistics aggregates the invoices issued in year. Revenue counts paid
// invoices in the month they were paid, falling back to the issue month.
func (s *statisticsService) GetYearStatistics(ctx context.Context, year int, topClients int) (*domain.YearStatistics, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid year %d", apperrors.ErrValidation, year)
	}

	invoices, err := s.invoiceRepo.ListInvoicesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for %d: %w", year, err)
	}

	now := s.now()
	stats := &domain.YearStatistics{
		Year:         year,
		TotalRevenue: decimal.Zero,
		Outstanding:  decimal.Zero,
		Overdue:      decimal.Zero,
		CountByStatus: map[domain.InvoiceStatus]int{
			domain.InvoiceIssued:    0,
			domain.InvoicePaid:      0,
			domain.InvoiceCancelled: 0,
		},
		TopClients: []domain.ClientRevenue{},
	}
	for m := range stats.MonthlyRevenue {
		stats.MonthlyRevenue[m] = decimal.Zero
	}

	revenueByClient := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		stats.CountByStatus[inv.Status]++
		totalDue := invoicing.ComputeInvoiceTotals(inv).TotalDue.Round(utils.AmountPrecision)

		switch inv.Status {
		case domain.InvoicePaid:
			month := inv.IssueDate.Month()
			if inv.PaymentDate != nil && inv.PaymentDate.Year() == year {
				month = inv.PaymentDate.Month()
			}
			stats.MonthlyRevenue[month-1] = stats.MonthlyRevenue[month-1].Add(totalDue)
			stats.TotalRevenue = stats.TotalRevenue.Add(totalDue)
			revenueByClient[inv.ClientID] = revenueByClient[inv.ClientID].Add(totalDue)
		case domain.InvoiceIssued:
			stats.Outstanding = stats.Outstanding.Add(totalDue)
			if inv.IsOverdue(now) {
				stats.Overdue = stats.Overdue.Add(totalDue)
			}
		}
	}

	stats.TopClients = s.rankClients(ctx, revenueByClient, topClients)
	return stats, nil
}

func (s *statisticsService) rankClients(ctx context.Context, revenue map[string]decimal.Decimal, limit int) []domain.ClientRevenue {
	ranking := make([]domain.ClientRevenue, 0, len(revenue))
	for clientID, amount := range revenue {
		ranking = append(ranking, domain.ClientRevenue{ClientID: clientID, Revenue: amount})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Revenue.Equal(ranking[j].Revenue) {
			return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
		}
		return ranking[i].ClientID < ranking[j].ClientID
	})
	if limit >= 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	for i := range ranking {
		client, err := s.clientRepo.FindClientByID(ctx, ranking[i].ClientID)
		if err != nil {
			s.LogDebug(ctx, "Client name unavailable for statistics",
				slog.String("client_id", ranking[i].ClientID),
				slog.String("error", err.Error()))
			continue
		}
		ranking[i].ClientName = client.DisplayName()
	}
	return ranking
}
