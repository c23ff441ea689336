package repositories

import "context"

// CategoryRepository derives the known category values from transaction
// history. There is no category table; each query is a DISTINCT projection
// over transactions, excluding empty strings, sorted ascending. An empty
// scope argument means "unscoped".
type CategoryRepository interface {
	// DistinctCategory1 lists the distinct tier-1 category values.
	DistinctCategory1(ctx context.Context) ([]string, error)

	// DistinctCategory2 lists distinct tier-2 values, optionally scoped to a tier-1 value.
	DistinctCategory2(ctx context.Context, category1 string) ([]string, error)

	// DistinctCategory3 lists distinct tier-3 values, optionally scoped to
	// tier-1 and/or tier-2 values.
	DistinctCategory3(ctx context.Context, category1, category2 string) ([]string, error)
}
