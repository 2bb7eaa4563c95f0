package storage

import (
	"context"
	"fmt"
	"time"

	"foodtrucks-maroc-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the Mongo client and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// Entity ids are generated application-side (see NewID) and stored in an "id"
// field, so records keep the same identifier across the Mongo and file
// backends. The Mongo _id stays internal.

// MongoFoodTrucks is the Mongo-backed listing store.
type MongoFoodTrucks struct {
	col *mongo.Collection
}

func NewMongoFoodTrucks(db *mongo.Database) *MongoFoodTrucks {
	return &MongoFoodTrucks{col: db.Collection("foodtrucks")}
}

func (s *MongoFoodTrucks) GetAll(ctx context.Context) ([]models.FoodTruck, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query foodtrucks: %w", err)
	}
	defer cursor.Close(ctx)

	var trucks []models.FoodTruck
	if err := cursor.All(ctx, &trucks); err != nil {
		return nil, fmt.Errorf("decode foodtrucks: %w", err)
	}
	if trucks == nil {
		trucks = []models.FoodTruck{}
	}
	return trucks, nil
}

func (s *MongoFoodTrucks) GetByID(ctx context.Context, id string) (*models.FoodTruck, error) {
	var truck models.FoodTruck
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&truck)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query foodtruck %s: %w", id, err)
	}
	return &truck, nil
}

func (s *MongoFoodTrucks) Create(ctx context.Context, truck models.FoodTruck) (*models.FoodTruck, error) {
	now := time.Now()
	truck.ID = NewID()
	truck.CreatedAt = now
	truck.UpdatedAt = now
	if _, err := s.col.InsertOne(ctx, truck); err != nil {
		return nil, fmt.Errorf("insert foodtruck: %w", err)
	}
	return &truck, nil
}

func (s *MongoFoodTrucks) Update(ctx context.Context, id string, updates models.FoodTruckUpdate) (*models.FoodTruck, error) {
	set := bson.M{"updatedAt": time.Now()}
	if updates.Name != nil {
		set["name"] = *updates.Name
	}
	if updates.Description != nil {
		set["description"] = *updates.Description
	}
	if updates.ShortDescription != nil {
		set["shortDescription"] = *updates.ShortDescription
	}
	if updates.Category != nil {
		set["category"] = *updates.Category
	}
	if updates.Images != nil {
		set["images"] = *updates.Images
	}
	if updates.Specifications != nil {
		set["specifications"] = *updates.Specifications
	}
	if updates.Featured != nil {
		set["featured"] = *updates.Featured
	}

	var truck models.FoodTruck
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&truck)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update foodtruck %s: %w", id, err)
	}
	return &truck, nil
}

func (s *MongoFoodTrucks) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete foodtruck %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoDevis is the Mongo-backed quote request store.
type MongoDevis struct {
	col *mongo.Collection
}

func NewMongoDevis(db *mongo.Database) *MongoDevis {
	return &MongoDevis{col: db.Collection("devis")}
}

func (s *MongoDevis) GetAll(ctx context.Context) ([]models.Devis, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query devis: %w", err)
	}
	defer cursor.Close(ctx)

	var list []models.Devis
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode devis: %w", err)
	}
	if list == nil {
		list = []models.Devis{}
	}
	return list, nil
}

func (s *MongoDevis) GetByID(ctx context.Context, id string) (*models.Devis, error) {
	var devis models.Devis
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&devis)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query devis %s: %w", id, err)
	}
	return &devis, nil
}

func (s *MongoDevis) Create(ctx context.Context, devis models.Devis) (*models.Devis, error) {
	now := time.Now()
	devis.ID = NewID()
	devis.CreatedAt = now
	devis.UpdatedAt = now
	if _, err := s.col.InsertOne(ctx, devis); err != nil {
		return nil, fmt.Errorf("insert devis: %w", err)
	}
	return &devis, nil
}

func (s *MongoDevis) Update(ctx context.Context, id string, updates models.DevisUpdate) (*models.Devis, error) {
	set := bson.M{"updatedAt": time.Now()}
	if updates.Status != nil {
		set["status"] = *updates.Status
	}
	if updates.QuoteAmount != nil {
		set["quoteAmount"] = *updates.QuoteAmount
	}
	if updates.QuoteMessage != nil {
		set["quoteMessage"] = *updates.QuoteMessage
	}

	var devis models.Devis
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&devis)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update devis %s: %w", id, err)
	}
	return &devis, nil
}

// MongoMessages is the Mongo-backed contact message store.
type MongoMessages struct {
	col *mongo.Collection
}

func NewMongoMessages(db *mongo.Database) *MongoMessages {
	return &MongoMessages{col: db.Collection("messages")}
}

func (s *MongoMessages) GetAll(ctx context.Context) ([]models.Message, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer cursor.Close(ctx)

	var list []models.Message
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	if list == nil {
		list = []models.Message{}
	}
	return list, nil
}

func (s *MongoMessages) GetByID(ctx context.Context, id string) (*models.Message, error) {
	var msg models.Message
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query message %s: %w", id, err)
	}
	return &msg, nil
}

func (s *MongoMessages) Create(ctx context.Context, msg models.Message) (*models.Message, error) {
	msg.ID = NewID()
	msg.CreatedAt = time.Now()
	if _, err := s.col.InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &msg, nil
}

func (s *MongoMessages) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.Message, error) {
	var msg models.Message
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update message %s: %w", id, err)
	}
	return &msg, nil
}

// MongoSettings stores the settings as a single upserted document.
type MongoSettings struct {
	col *mongo.Collection
}

func NewMongoSettings(db *mongo.Database) *MongoSettings {
	return &MongoSettings{col: db.Collection("settings")}
}

const settingsDocID = "site"

func (s *MongoSettings) Get(ctx context.Context) (models.Settings, error) {
	var doc struct {
		Settings models.Settings `bson:"settings"`
	}
	err := s.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return doc.Settings, nil
}

func (s *MongoSettings) Save(ctx context.Context, settings models.Settings) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{"settings": settings}}, opts)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
