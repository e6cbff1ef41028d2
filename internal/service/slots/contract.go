//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slots_test
package slots

import (
	"context"
)

type Repository interface {
	OccupiedTimes(ctx context.Context, date string) ([]string, error)
}

type Cache interface {
	GetOccupied(ctx context.Context, date string) (times []string, found bool, err error)
	SetOccupied(ctx context.Context, date string, times []string) error
}
