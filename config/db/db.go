package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Process-wide persistence handle. Initialized once from server.Start and
// torn down on shutdown; never touched from init().
var (
	Client   *mongo.Client
	Database *mongo.Database
)

func Init(ctx context.Context, uri string, dbName string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error while connecting to mongo: ", err)
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Error while pinging mongo: ", err)
		return err
	}
	Client = client
	Database = client.Database(dbName)
	log.Println("Connected to mongo database: ", dbName)
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	err := Client.Disconnect(ctx)
	Client = nil
	Database = nil
	return err
}

func OpenCollection(name string) *mongo.Collection {
	if Database == nil {
		return nil
	}
	return Database.Collection(name)
}

// The helpers below are declared as vars so tests can swap them out, the same
// way main_test.go swaps startServer.

var FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
	coll := OpenCollection(collection)
	return coll.FindOne(ctx, filter).Decode(result)
}

var FindAll = func(ctx context.Context, collection string, filter interface{}, opts *options.FindOptions) ([]map[string]interface{}, error) {
	coll := OpenCollection(collection)
	if filter == nil {
		filter = bson.M{}
	}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []map[string]interface{}{}
	for cursor.Next(ctx) {
		doc := make(map[string]interface{})
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	return results, cursor.Err()
}

var CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
	return OpenCollection(collection).InsertOne(ctx, document)
}

var UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return OpenCollection(collection).UpdateOne(ctx, filter, update, opts...)
}

var UpdateMany = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return OpenCollection(collection).UpdateMany(ctx, filter, update, opts...)
}

var DeleteOne = func(ctx context.Context, collection string, filter interface{}) (*mongo.DeleteResult, error) {
	return OpenCollection(collection).DeleteOne(ctx, filter)
}

var FindOneAndUpdate = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions, result interface{}) error {
	return OpenCollection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

var CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
	return OpenCollection(collection).CountDocuments(ctx, filter)
}
