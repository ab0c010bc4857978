package internal

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DeleteAll calls del for every id and returns the ids that failed along
// with their errors combined
func DeleteAll(ctx context.Context, entity string, ids []string, del func(ctx context.Context, id string) error) ([]string, error) {
	var (
		failed []string
		result error
	)
	for _, id := range ids {
		if err := del(ctx, id); err != nil {
			failed = append(failed, id)
			result = multierror.Append(result, fmt.Errorf("error deleting %s [%s]: %w", entity, id, err))
		}
	}
	return failed, result
}
