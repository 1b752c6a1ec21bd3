package directory

import (
	"context"

	"spotless/internal/domain"
)

type CustomerInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	TotalBookings int64  `json:"totalBookings"`
}

type CleanerInfo struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	Status        string  `json:"status"`
	Rating        float64 `json:"rating"`
	JobsCompleted int64   `json:"jobsCompleted"`
}

type Settings struct {
	CompanyName  string `json:"companyName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	WorkingHours string `json:"workingHours"`
	Currency     string `json:"currency"`
	TaxRate      int    `json:"taxRate"`
}

type Service struct {
	users    UserReader
	bookings BookingCounter
}

func NewService(users UserReader, bookings BookingCounter) *Service {
	return &Service{users: users, bookings: bookings}
}

func (s *Service) Customers(ctx context.Context) ([]CustomerInfo, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	out := make([]CustomerInfo, 0, len(users))
	for _, u := range users {
		total, err := s.bookings.CountByCustomer(ctx, u.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, CustomerInfo{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			TotalBookings: total,
		})
	}
	return out, nil
}

// Cleaners lists cleaner accounts. Rating and job counts are demo filler
// derived from the id so the listing is stable between calls.
func (s *Service) Cleaners(ctx context.Context) ([]CleanerInfo, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleCleaner)
	if err != nil {
		return nil, err
	}

	out := make([]CleanerInfo, 0, len(users))
	for _, u := range users {
		out = append(out, CleanerInfo{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			Status:        "active",
			Rating:        4.5 + float64(u.ID%5)/10,
			JobsCompleted: 50 + u.ID*37%100,
		})
	}
	return out, nil
}

func (s *Service) Settings() Settings {
	return Settings{
		CompanyName:  "Spotless Solution",
		ContactEmail: "info@spotless.com",
		ContactPhone: "+254 700 123 456",
		WorkingHours: "Mon-Sat 8:00 AM - 6:00 PM",
		Currency:     "KES",
		TaxRate:      16,
	}
}
