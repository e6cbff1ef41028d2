package slots

import (
	"context"
	"fmt"
	"time"

	"vodovoz/internal/entities"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Slots struct {
	repository Repository
	cache      Cache
	grid       []string
	gridSet    map[string]struct{}
}

func New(repository Repository, cache Cache, grid []string) *Slots {
	gridSet := make(map[string]struct{}, len(grid))
	for _, t := range grid {
		gridSet[t] = struct{}{}
	}

	return &Slots{
		repository: repository,
		cache:      cache,
		grid:       grid,
		gridSet:    gridSet,
	}
}

// BuildGrid строит сетку слотов от start до end включительно с шагом step.
func BuildGrid(start, end string, step time.Duration) ([]string, error) {
	from, err := time.Parse(timeLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parse grid start %q: %w", start, err)
	}
	to, err := time.Parse(timeLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parse grid end %q: %w", end, err)
	}
	if step <= 0 || to.Before(from) {
		return nil, fmt.Errorf("invalid grid bounds %q..%q step %s", start, end, step)
	}

	var grid []string
	for t := from; !t.After(to); t = t.Add(step) {
		grid = append(grid, t.Format(timeLayout))
	}
	return grid, nil
}

// GetDaySlots возвращает свободные и занятые слоты на дату.
// Пустая дата это ошибка клиента, а не "все слоты свободны".
func (s *Slots) GetDaySlots(ctx context.Context, date string) (*entities.DaySlots, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	occupied, err := s.occupiedTimes(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get occupied times: %w", err)
	}

	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		// занятое время вне сетки не скрывает слоты
		if _, ok := s.gridSet[t]; ok {
			occupiedSet[t] = struct{}{}
		}
	}

	available := make([]string, 0, len(s.grid)-len(occupiedSet))
	for _, t := range s.grid {
		if _, ok := occupiedSet[t]; !ok {
			available = append(available, t)
		}
	}

	return &entities.DaySlots{
		Date:      date,
		Available: available,
		Occupied:  occupied,
	}, nil
}

// InGrid сообщает, входит ли время в сетку слотов.
func (s *Slots) InGrid(t string) bool {
	_, ok := s.gridSet[t]
	return ok
}

func (s *Slots) occupiedTimes(ctx context.Context, date string) ([]string, error) {
	// ошибки кэша не фатальны, источник истины - база
	cached, found, err := s.cache.GetOccupied(ctx, date)
	if err == nil && found {
		return cached, nil
	}

	occupied, err := s.repository.OccupiedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetOccupied(ctx, date, occupied)

	return occupied, nil
}
