package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

// ErrSlugTaken is returned when creating a client with a slug already in use
var ErrSlugTaken = errors.New("a client with this slug already exists")

// ClientRepo handles MongoDB operations for clients (tenants)
type ClientRepo interface {
	Create(ctx context.Context, client *model.Client) (string, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
	GetBySlug(ctx context.Context, slug string) (*model.Client, error)
	GetActiveBySlug(ctx context.Context, slug string) (*model.Client, error)
	List(ctx context.Context) ([]*model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string) error
}

type clientRepo struct {
	collection *mongo.Collection
}

// NewClientRepo creates a new client repository
func NewClientRepo(db *mongo.Database) ClientRepo {
	return &clientRepo{
		collection: db.Collection("clients"),
	}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) (string, error) {
	// Slug must be unique across tenants
	count, err := r.collection.CountDocuments(ctx, bson.M{"clientSlug": client.Slug})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugTaken
	}

	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	if client.SurveyStatus == "" {
		client.SurveyStatus = model.SurveyStatusDraft
	}

	result, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("invalid inserted ID")
	}
	client.ID = oid.Hex()
	return client.ID, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var client model.Client
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetBySlug(ctx context.Context, slug string) (*model.Client, error) {
	var client model.Client
	err := r.collection.FindOne(ctx, bson.M{"clientSlug": slug}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetActiveBySlug(ctx context.Context, slug string) (*model.Client, error) {
	var client model.Client
	filter := bson.M{"clientSlug": slug, "surveyStatus": model.SurveyStatusActive}
	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]*model.Client, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []*model.Client
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return err
	}

	client.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"clientName":           client.Name,
		"logoUrl":              client.LogoURL,
		"primaryColour":        client.PrimaryC,
		"secondaryColour":      client.SecondaryC,
		"departments":          client.Departments,
		"locations":            client.Locations,
		"surveyStatus":         client.SurveyStatus,
		"requireM365Auth":      client.RequireM365Auth,
		"allowedM365TenantIds": client.AllowedTenants,
		"allowedM365Domains":   client.AllowedDomains,
		"updatedAt":            client.UpdatedAt,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
