package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"halaqat/utils"
)

// BootMongo connects to the document store and pings it before handing the
// database back. The database name comes from MONGO_DB, defaulting to the
// application name.
func BootMongo(uri string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Failed to connect to ", utils.ColorText("MongoDB: ", utils.Red), err)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ Failed to ping ", utils.ColorText("MongoDB: ", utils.Red), err)
		return nil, err
	}

	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "halaqat"
	}
	return client.Database(name), nil
}
