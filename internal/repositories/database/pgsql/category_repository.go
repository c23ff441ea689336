package pgsql

import (
	"context"
	"strconv"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// categoryRepository implements the CategoryRepository interface. Category
// values live only inside transactions, so every query is a DISTINCT
// projection over the transaction log.
type categoryRepository struct {
	BaseRepository
}

// newCategoryRepository creates a new category repository
func newCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &categoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// distinctValues runs a DISTINCT query over one category column, scoped by
// zero or more (column, value) pairs. Empty strings are always excluded and
// results come back sorted ascending.
func (r *categoryRepository) distinctValues(ctx context.Context, column string, scopes map[string]string) ([]string, error) {
	// column is one of the fixed category column names, never user input.
	query := `SELECT DISTINCT ` + column + ` FROM transactions WHERE ` + column + ` != ''`
	args := []any{}
	for _, scopeColumn := range []string{"category1", "category2"} {
		if value, ok := scopes[scopeColumn]; ok && value != "" {
			args = append(args, value)
			query += ` AND ` + scopeColumn + ` = $` + strconv.Itoa(len(args))
		}
	}
	query += ` ORDER BY ` + column + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query distinct "+column+" values", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+column+" value", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating "+column+" values", err)
	}
	return values, nil
}

// DistinctCategory1 lists the distinct tier-1 category values.
func (r *categoryRepository) DistinctCategory1(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "category1", nil)
}

// DistinctCategory2 lists distinct tier-2 values, optionally scoped to a tier-1 value.
func (r *categoryRepository) DistinctCategory2(ctx context.Context, category1 string) ([]string, error) {
	return r.distinctValues(ctx, "category2", map[string]string{"category1": category1})
}

// DistinctCategory3 lists distinct tier-3 values, optionally scoped to tier-1
// and/or tier-2 values.
func (r *categoryRepository) DistinctCategory3(ctx context.Context, category1, category2 string) ([]string, error) {
	return r.distinctValues(ctx, "category3", map[string]string{
		"category1": category1,
		"category2": category2,
	})
}
