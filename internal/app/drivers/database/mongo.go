package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mna-assessment-service/internal/app/config"
)

// MongoConnectionString prefers the full URI and otherwise assembles one
// from the host parts, leaving credentials out when no username is set.
func MongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.URI != "" {
		return driverConfig.MongoDB.URI
	}
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		url.QueryEscape(driverConfig.MongoDB.Username),
		url.QueryEscape(driverConfig.MongoDB.Password),
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}

// NewMongoDB opens the client once for the whole process. A failed ping only
// warns: the store reports itself unavailable per request until the server
// is reachable.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	timeout := time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds) * time.Second
	dbOptions := options.Client().
		ApplyURI(MongoConnectionString(driverConfig)).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(context.Background(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Printf("Failed to ping mongo database, continuing: %s", err.Error())
		return client
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureAssessmentIndexes creates the descending createdAt index the list,
// report and export queries sort on.
func EnsureAssessmentIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	return err
}
