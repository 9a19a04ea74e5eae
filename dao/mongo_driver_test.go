package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studynotes/storefront.api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const namespace = "storefront.products"

func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options) {
	client = &mongo.Client{}
	cfg := config.DefaultConfig()
	dataBase := NewGetMongoDatabase("mongoDBURL", cfg.Database)

	mongoService := MongoService{
		db:             dataBase,
		CollectionName: cfg.Collection,
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	opts := mtest.NewOptions().DatabaseName(cfg.Database).ClientType(mtest.Mock)

	return mongoService, commandError, opts
}

func TestUnitGetProductDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetProduct successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "n2"},
			{Key: "position", Value: 2},
			{Key: "title", Value: "Data Structures & Algorithms Handbook"},
			{Key: "price", Value: "499"},
			{Key: "category", Value: "Computer Science"},
			{Key: "tags", Value: bson.A{"Algorithms", "Trees"}},
		}))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct(context.Background(), "n2")
		assert.Nil(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, "n2", product.ID)
		assert.Equal(t, "499", product.Price)
		assert.Equal(t, []string{"Algorithms", "Trees"}, product.Tags)
	})

	mt.Run("GetProduct not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct(context.Background(), "missing")
		assert.Nil(t, err)
		assert.Nil(t, product)
	})

	mt.Run("GetProduct with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct(context.Background(), "n2")
		assert.NotNil(t, err)
		assert.Nil(t, product)
	})

	mt.Run("GetProduct with decoding error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "n2"},
			{Key: "tags", Value: "Algorithms"},
		}))

		mongoService.db = mt.DB

		product, err := mongoService.GetProduct(context.Background(), "n2")
		assert.NotNil(t, err)
		assert.Nil(t, product)
	})
}

func TestUnitListProductsDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("ListProducts successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "1"}, {Key: "position", Value: 1}, {Key: "title", Value: "Complete JavaScript Notes for Beginners"}},
			bson.D{{Key: "_id", Value: "2"}, {Key: "position", Value: 2}, {Key: "title", Value: "Data Structures & Algorithms Handbook"}},
		))

		mongoService.db = mt.DB

		products, err := mongoService.ListProducts(context.Background())
		assert.Nil(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "Data Structures & Algorithms Handbook", products[1].Title)
	})

	mt.Run("ListProducts empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch))

		mongoService.db = mt.DB

		products, err := mongoService.ListProducts(context.Background())
		assert.Nil(t, err)
		assert.Empty(t, products)
	})

	mt.Run("ListProducts with error find", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		products, err := mongoService.ListProducts(context.Background())
		assert.NotNil(t, err)
		assert.Nil(t, products)
	})
}
