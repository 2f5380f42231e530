/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package studentstore

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
	collectionName = "students"

	fieldID          = "_id"
	fieldToken       = "token"
	fieldCredentials = "credentials"
)

type mongoDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Email       string               `bson:"email"`
	University  *primitive.ObjectID  `bson:"university,omitempty"`
	Credentials []primitive.ObjectID `bson:"credentials"`
	Token       string               `bson:"token,omitempty"`
}

// Store keeps students and their credential index in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate student store: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldToken, Value: 1}},
		Options: options.Index().SetSparse(true),
	})

	return err
}

// Create inserts a student with an optional session token and returns its id.
func (s *Store) Create(ctx context.Context, st *credential.Student, token string) (credential.ID, error) {
	doc := &mongoDocument{
		Name:        st.Name,
		Email:       st.Email,
		Token:       token,
		Credentials: []primitive.ObjectID{},
	}

	if st.UniversityID != "" {
		oid, err := mongodb.ObjectID(st.UniversityID)
		if err != nil {
			return "", fmt.Errorf("university: %w", err)
		}

		doc.University = &oid
	}

	res, err := s.collection().InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert student: %w", err)
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil //nolint:forcetypeassert
}

func (s *Store) FindByID(ctx context.Context, id credential.ID) (*credential.Student, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return nil, err
	}

	return s.findOne(ctx, bson.M{fieldID: oid})
}

func (s *Store) FindByToken(ctx context.Context, token string) (*credential.Student, error) {
	if token == "" {
		return nil, credential.ErrDataNotFound
	}

	return s.findOne(ctx, bson.M{fieldToken: token})
}

// AddCredential appends credentialID to the student's index. Adding an id twice is a no-op.
func (s *Store) AddCredential(ctx context.Context, studentID, credentialID credential.ID) error {
	return s.updateIndex(ctx, studentID, credentialID, "$addToSet")
}

// RemoveCredential removes credentialID from the student's index. Removing an absent id is a no-op.
func (s *Store) RemoveCredential(ctx context.Context, studentID, credentialID credential.ID) error {
	return s.updateIndex(ctx, studentID, credentialID, "$pull")
}

func (s *Store) updateIndex(ctx context.Context, studentID, credentialID credential.ID, op string) error {
	sid, err := mongodb.ObjectID(studentID)
	if err != nil {
		return err
	}

	cid, err := mongodb.ObjectID(credentialID)
	if err != nil {
		return err
	}

	res, err := s.collection().UpdateOne(ctx,
		bson.M{fieldID: sid},
		bson.M{op: bson.M{fieldCredentials: cid}},
	)
	if err != nil {
		return fmt.Errorf("update student credentials: %w", err)
	}

	if res.MatchedCount == 0 {
		return credential.ErrDataNotFound
	}

	return nil
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*credential.Student, error) {
	var doc mongoDocument

	if err := s.collection().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find student: %w", err)
	}

	st := &credential.Student{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Email:         doc.Email,
		CredentialIDs: make([]credential.ID, 0, len(doc.Credentials)),
	}

	if doc.University != nil {
		st.UniversityID = doc.University.Hex()
	}

	for _, c := range doc.Credentials {
		st.CredentialIDs = append(st.CredentialIDs, c.Hex())
	}

	return st, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}
