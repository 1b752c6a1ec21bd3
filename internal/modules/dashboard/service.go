package dashboard

import (
	"context"

	"spotless/internal/domain"
)

// Fixed dashboard figures. These are presentation filler, not derived from
// the store; only the booking counters and revenue are real.
const (
	mockActiveCleaners    = 4
	mockSatisfactionScore = 4.7
	mockMonthlyGrowth     = 12.5
)

type Stats struct {
	TotalRevenue      int64   `json:"totalRevenue"`
	TotalBookings     int     `json:"totalBookings"`
	PendingCount      int     `json:"pendingCount"`
	CompletedCount    int     `json:"completedCount"`
	ActiveCleaners    int     `json:"activeCleaners"`
	SatisfactionScore float64 `json:"satisfactionScore"`
	MonthlyGrowth     float64 `json:"monthlyGrowth"`
}

type ChartData struct {
	Labels  []string `json:"labels"`
	Revenue []int64  `json:"revenue"`
}

type GroupSummary struct {
	Count   int   `json:"count"`
	Revenue int64 `json:"revenue"`
}

type ReportSummary struct {
	ByStatus  map[string]GroupSummary `json:"byStatus"`
	ByService map[string]GroupSummary `json:"byService"`
}

type Service struct {
	bookings BookingReader
}

func NewService(bookings BookingReader) *Service {
	return &Service{bookings: bookings}
}

// Stats folds over the whole booking store. Revenue counts every booking's
// amount regardless of status, matching what the dashboard has always shown.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	rows, err := s.bookings.All(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalBookings:     len(rows),
		ActiveCleaners:    mockActiveCleaners,
		SatisfactionScore: mockSatisfactionScore,
		MonthlyGrowth:     mockMonthlyGrowth,
	}
	for _, b := range rows {
		st.TotalRevenue += b.Amount
		switch b.Status {
		case domain.BookingPending:
			st.PendingCount++
		case domain.BookingCompleted:
			st.CompletedCount++
		}
	}
	return st, nil
}

// Chart returns the fixed revenue series the dashboard plots.
func (s *Service) Chart() *ChartData {
	return &ChartData{
		Labels:  []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Revenue: []int64{12500, 14200, 13800, 16500, 17900, 19400},
	}
}

func (s *Service) RecentBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.bookings.List(ctx, limit)
}

// Report groups bookings by status and by service with count and revenue
// per group.
func (s *Service) Report(ctx context.Context) (*ReportSummary, error) {
	rows, err := s.bookings.All(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReportSummary{
		ByStatus:  make(map[string]GroupSummary),
		ByService: make(map[string]GroupSummary),
	}
	for _, b := range rows {
		st := report.ByStatus[b.Status]
		st.Count++
		st.Revenue += b.Amount
		report.ByStatus[b.Status] = st

		sv := report.ByService[b.Service]
		sv.Count++
		sv.Revenue += b.Amount
		report.ByService[b.Service] = sv
	}
	return report, nil
}
