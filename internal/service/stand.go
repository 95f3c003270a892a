package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/guttosm/lemonstand/internal/domain/models"
	"github.com/guttosm/lemonstand/internal/logger"
)

// StandService exposes a single Stand to concurrent callers.
//
// Mutators (AddMenuItem, RecordSalesForToday) hold an exclusive lock so that
// validating and appending a day is atomic for readers; queries share a read lock.
type StandService interface {
	Name() string
	Days(ctx context.Context) (int, error)
	AddMenuItem(ctx context.Context, item models.MenuItem) error
	MenuItem(ctx context.Context, name string) (models.MenuItem, bool, error)
	Menu(ctx context.Context) ([]models.MenuItem, error)
	History(ctx context.Context) ([]models.DailySales, error)
	RecordSalesForToday(ctx context.Context, quantities map[string]int) (int, error)
	UnitsSoldFor(ctx context.Context, day int, itemName string) (int, error)
	TotalUnitsSold(ctx context.Context, itemName string) (int, error)
	TotalProfitFor(ctx context.Context, itemName string) (decimal.Decimal, error)
	TotalProfit(ctx context.Context) (decimal.Decimal, error)
}

type standService struct {
	mu    sync.RWMutex
	stand *models.Stand
}

func NewStandService(stand *models.Stand) StandService {
	return &standService{stand: stand}
}

func (s *standService) Name() string { return s.stand.Name() }

func (s *standService) Days(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.Days(), nil
}

func (s *standService) AddMenuItem(ctx context.Context, item models.MenuItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	_, replaced := s.stand.MenuItem(item.Name())
	s.stand.AddMenuItem(item)
	s.mu.Unlock()

	logger.L().Info().
		Str("stand", s.stand.Name()).
		Str("item", item.Name()).
		Str("wholesale_cost", item.WholesaleCost().String()).
		Str("selling_price", item.SellingPrice().String()).
		Bool("replaced", replaced).
		Msg("menu item added")
	return nil
}

func (s *standService) MenuItem(ctx context.Context, name string) (models.MenuItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.MenuItem{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.stand.MenuItem(name)
	return item, ok, nil
}

func (s *standService) Menu(ctx context.Context) ([]models.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.Menu(), nil
}

func (s *standService) History(ctx context.Context) ([]models.DailySales, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.History(), nil
}

// RecordSalesForToday records the next day and returns its index.
func (s *standService) RecordSalesForToday(ctx context.Context, quantities map[string]int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	day := s.stand.Days()
	err := s.stand.RecordSalesForToday(quantities)
	s.mu.Unlock()

	if err != nil {
		logger.L().Warn().Str("stand", s.stand.Name()).Err(err).Msg("sales rejected")
		return 0, err
	}
	logger.L().Info().Str("stand", s.stand.Name()).Int("day", day).Int("items", len(quantities)).Msg("sales recorded")
	return day, nil
}

func (s *standService) UnitsSoldFor(ctx context.Context, day int, itemName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.UnitsSoldFor(day, itemName)
}

func (s *standService) TotalUnitsSold(ctx context.Context, itemName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.TotalUnitsSold(itemName), nil
}

func (s *standService) TotalProfitFor(ctx context.Context, itemName string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.TotalProfitFor(itemName), nil
}

func (s *standService) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stand.TotalProfit(), nil
}
