package bootstrap

import (
	"context"

	"hotel-booking/internal/infra/mongostore"
	"hotel-booking/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var MongoModule = fx.Module("mongo",
	fx.Provide(
		NewMongoClient,
		NewMongoDatabase,
		NewThreadStore,
	),
)

func NewMongoClient(lc fx.Lifecycle, cfg config.Config) (*mongo.Client, error) {
	client, err := mongostore.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

func NewMongoDatabase(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

func NewThreadStore(lc fx.Lifecycle, database *mongo.Database) *mongostore.ThreadStore {
	store := mongostore.NewThreadStore(database)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureIndexes(ctx)
		},
	})
	return store
}
