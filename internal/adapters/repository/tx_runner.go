package repository

import (
	"context"
	"fmt"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ domain.TxRunner = (*MongoTxRunner)(nil)

// MongoTxRunner needs a replica set or sharded cluster; standalone servers
// reject transactions.
type MongoTxRunner struct {
	Client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{Client: client}
}

func (r *MongoTxRunner) Run(ctx context.Context, fn func(txCtx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	// WithTransaction retries fn on transient errors.
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
