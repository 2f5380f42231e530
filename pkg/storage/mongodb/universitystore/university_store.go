/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package universitystore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/storage/mongodb"
)

const (
	collectionName = "universities"

	fieldID    = "_id"
	fieldToken = "token"
)

type mongoDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UniversityName string             `bson:"universityName"`
	Email          string             `bson:"email"`
	Token          string             `bson:"token,omitempty"`
}

type Store struct {
	mongoClient *mongodb.Client
}

func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	_, err := s.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldToken, Value: 1}},
		Options: options.Index().SetSparse(true),
	})
	if err != nil {
		return nil, fmt.Errorf("migrate university store: %w", err)
	}

	return s, nil
}

// Create inserts a university with an optional session token and returns its id.
func (s *Store) Create(ctx context.Context, u *credential.University, token string) (credential.ID, error) {
	res, err := s.collection().InsertOne(ctx, &mongoDocument{
		UniversityName: u.Name,
		Email:          u.Email,
		Token:          token,
	})
	if err != nil {
		return "", fmt.Errorf("insert university: %w", err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil //nolint:forcetypeassert
}

func (s *Store) FindByID(ctx context.Context, id credential.ID) (*credential.University, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return nil, err
	}

	return s.findOne(ctx, bson.M{fieldID: oid})
}

func (s *Store) FindByToken(ctx context.Context, token string) (*credential.University, error) {
	if token == "" {
		return nil, credential.ErrDataNotFound
	}

	return s.findOne(ctx, bson.M{fieldToken: token})
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*credential.University, error) {
	var doc mongoDocument

	if err := s.collection().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find university: %w", err)
	}

	return &credential.University{
		ID:    doc.ID.Hex(),
		Name:  doc.UniversityName,
		Email: doc.Email,
	}, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}
