package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

// SessionRepo handles MongoDB operations for survey access sessions
type SessionRepo interface {
	GetByClientAndEmail(ctx context.Context, clientID, email string) (*model.SurveySession, error)
	Upsert(ctx context.Context, session *model.SurveySession) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("survey_sessions"),
	}
}

func (r *sessionRepo) GetByClientAndEmail(ctx context.Context, clientID, email string) (*model.SurveySession, error) {
	var session model.SurveySession
	filter := bson.M{"clientId": clientID, "userEmail": email}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Upsert(ctx context.Context, session *model.SurveySession) error {
	now := time.Now()
	session.LastActiveAt = now

	filter := bson.M{"clientId": session.ClientID, "userEmail": session.UserEmail}
	update := bson.M{
		"$set": bson.M{
			"userName":     session.UserName,
			"m365TenantId": session.M365TenantID,
			"m365ObjectId": session.M365ObjectID,
			"lastActiveAt": now,
		},
		"$setOnInsert": bson.M{
			"clientId":  session.ClientID,
			"userEmail": session.UserEmail,
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}
