package word

import "context"

// Repository is the read-mostly catalog store. CreateBatch exists for the
// import tool; normal operation never mutates the catalog.
type Repository interface {
	List(ctx context.Context) ([]Word, error)
	Get(ctx context.Context, wid string) (*Word, error)
	CreateBatch(ctx context.Context, words []Word) (int, error)
}
