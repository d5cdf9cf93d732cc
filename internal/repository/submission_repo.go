package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

// ErrSubmissionNotFound is returned when no submission exists for a session
var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	_, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("insert submission for session %s: %w", submission.SessionID, err)
	}
	return nil
}

func (r *submissionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Submission, error) {
	var submission model.Submission
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrSubmissionNotFound)
		}
		return nil, err
	}
	return &submission, nil
}
