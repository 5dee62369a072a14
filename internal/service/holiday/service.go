package holiday

import (
	"context"
	"fmt"

	"github.com/atlashr/workforce-backend-go/internal/domain/holiday"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
	"github.com/atlashr/workforce-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, fromRequest(req))
	if err != nil {
		// ErrHolidayExists passes through unwrapped for the conflict mapping.
		return holiday.HolidayResponse{}, err
	}

	return toResponse(created), nil
}

// BulkCreateHolidays implements holiday.HolidayService.
// The batch runs in one transaction: a duplicate date anywhere in the list
// rolls back every insert of the import.
func (s *HolidayServiceImpl) BulkCreateHolidays(ctx context.Context, req holiday.BulkCreateHolidaysRequest) ([]holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(req.Holidays))
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, item := range req.Holidays {
			created, err := s.HolidayRepository.Create(txCtx, fromRequest(item))
			if err != nil {
				return err
			}
			responses = append(responses, toResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByYear(ctx, year, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}

	return responses, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func fromRequest(req holiday.CreateHolidayRequest) holiday.Holiday {
	return holiday.Holiday{
		Date:     req.On,
		Name:     req.Name,
		Year:     req.On.Year(),
		IsActive: true,
	}
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:       h.ID,
		Date:     h.Date.Format("2006-01-02"),
		Name:     h.Name,
		Year:     h.Year,
		IsActive: h.IsActive,
	}
}

func NewHolidayService(db *database.DB, repo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:                db,
		HolidayRepository: repo,
	}
}
