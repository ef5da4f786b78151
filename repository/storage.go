package repository

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"halaqat/config"
	"halaqat/domain"
)

// NewStorage picks a backend from the environment at startup: Postgres when a
// database URL is configured, MongoDB when MONGO_URI is set, and the seeded
// in-memory store otherwise. The choice is made once; callers only ever see
// domain.Storage.
func NewStorage() (domain.Storage, error) {
	ctx := context.Background()

	if dsn := config.GetDatabaseURL(); dsn != "" {
		db, err := config.BootDB(dsn)
		if err != nil {
			return nil, err
		}
		store := NewPostgresStorage(db)
		EnsureTeachersSeeded(ctx, store)
		log.Info().Msg("storage backend: postgres")
		return store, nil
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		db, err := config.BootMongo(uri)
		if err != nil {
			return nil, err
		}
		store := NewMongoStorage(db)
		EnsureTeachersSeeded(ctx, store)
		log.Info().Msg("storage backend: mongodb")
		return store, nil
	}

	log.Info().Msg("storage backend: in-memory")
	return NewMemoryStorage(true), nil
}
