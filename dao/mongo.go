package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/config"
	"github.com/studynotes/storefront.api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(fmt.Errorf("error connecting to mongodb: [%v]", err))
		return nil
	}

	// Check the connection.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = mongoClient.Ping(pingCtx, nil); err != nil {
		log.Error(fmt.Errorf("error pinging mongodb: [%v]", err))
	} else {
		log.Info("connected to mongodb")
	}

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) (MongoDatabaseInterface, error) {
	mongoClient := getMongoClient(mongoDBURL)
	if mongoClient == nil {
		return nil, errors.New("no mongodb client")
	}
	return mongoClient.Database(databaseName), nil
}

// MongoService is an implementation of the DAO interface using MongoDB
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// NewMongoService returns a catalog DAO backed by the configured collection
func NewMongoService(cfg config.Config) (*MongoService, error) {
	db, err := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &MongoService{
		db:             db,
		CollectionName: cfg.Collection,
	}, nil
}

// GetProduct gets a product from the DB.
// If the product is not found in the DB, nil is returned with no error.
func (m *MongoService) GetProduct(ctx context.Context, id string) (*models.ProductDB, error) {
	var product models.ProductDB
	collection := m.db.Collection(m.CollectionName)

	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting product [%s] from db: [%w]", id, err)
	}

	return &product, nil
}

// ListProducts returns the whole catalog in display order
func (m *MongoService) ListProducts(ctx context.Context) ([]models.ProductDB, error) {
	collection := m.db.Collection(m.CollectionName)

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("error listing products from db: [%w]", err)
	}
	defer cursor.Close(ctx)

	products := []models.ProductDB{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("error decoding products from db: [%w]", err)
	}

	return products, nil
}
