/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/storage/mongodb"
)

const (
	collectionName = "credentials"

	fieldID          = "_id"
	fieldStudent     = "student"
	fieldUniversity  = "university"
	fieldHash        = "credentialHash"
	fieldSlug        = "slug"
	fieldLedgerTxRef = "blockchainTxHash"
	fieldIssueDate   = "issueDate"
)

type mongoDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Student          primitive.ObjectID `bson:"student"`
	University       primitive.ObjectID `bson:"university"`
	Title            string             `bson:"title"`
	ImagePath        string             `bson:"imagePath"`
	CredentialHash   string             `bson:"credentialHash"`
	Slug             string             `bson:"slug"`
	BlockchainTxHash *string            `bson:"blockchainTxHash"`
	IssueDate        time.Time          `bson:"issueDate"`
}

// Store keeps issued credentials in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates a Store and makes sure its indexes exist.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate credential store: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldSlug, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: fieldHash, Value: 1}},
		},
		{
			Keys: bson.D{{Key: fieldStudent, Value: 1}},
		},
		{
			Keys: bson.D{{Key: fieldUniversity, Value: 1}, {Key: fieldIssueDate, Value: -1}},
		},
	})

	return err
}

// Create inserts c and returns the assigned id. A taken slug yields credential.ErrDuplicateSlug.
func (s *Store) Create(ctx context.Context, c *credential.Credential) (credential.ID, error) {
	doc, err := toDocument(c)
	if err != nil {
		return "", err
	}

	res, err := s.collection().InsertOne(ctx, doc)
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return "", credential.ErrDuplicateSlug
		}

		return "", fmt.Errorf("insert credential: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (s *Store) FindByID(ctx context.Context, id credential.ID) (*credential.Credential, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return nil, err
	}

	return s.findOne(ctx, bson.M{fieldID: oid})
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*credential.Credential, error) {
	return s.findOne(ctx, bson.M{fieldSlug: slug})
}

// FindByHash returns the earliest credential with the content hash.
func (s *Store) FindByHash(ctx context.Context, hash string) (*credential.Credential, error) {
	return s.findOne(ctx, bson.M{fieldHash: hash},
		options.FindOne().SetSort(bson.D{{Key: fieldIssueDate, Value: 1}}))
}

func (s *Store) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	n, err := s.collection().CountDocuments(ctx, bson.M{fieldSlug: slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count credentials by slug: %w", err)
	}

	return n > 0, nil
}

func (s *Store) FindByStudent(ctx context.Context, studentID credential.ID) ([]*credential.Credential, error) {
	oid, err := mongodb.ObjectID(studentID)
	if err != nil {
		return nil, err
	}

	return s.find(ctx, bson.M{fieldStudent: oid}, options.Find().SetSort(bson.D{{Key: fieldIssueDate, Value: 1}}))
}

// FindByUniversity returns the credentials issued by a university, newest first.
func (s *Store) FindByUniversity(ctx context.Context, universityID credential.ID) ([]*credential.Credential, error) {
	oid, err := mongodb.ObjectID(universityID)
	if err != nil {
		return nil, err
	}

	return s.find(ctx, bson.M{fieldUniversity: oid}, options.Find().SetSort(bson.D{{Key: fieldIssueDate, Value: -1}}))
}

// unanchored matches a missing, null or empty ledger reference, the same values Credential.Anchored rejects.
func unanchored() bson.M {
	return bson.M{"$in": bson.A{nil, ""}}
}

// FindUnanchored returns up to limit credentials without a ledger reference, oldest first.
func (s *Store) FindUnanchored(ctx context.Context, limit int) ([]*credential.Credential, error) {
	return s.find(ctx, bson.M{fieldLedgerTxRef: unanchored()},
		options.Find().SetSort(bson.D{{Key: fieldIssueDate, Value: 1}}).SetLimit(int64(limit)))
}

// List returns up to limit credentials with ids greater than after, in id order.
func (s *Store) List(ctx context.Context, after credential.ID, limit int) ([]*credential.Credential, error) {
	filter := bson.M{}

	if after != "" {
		oid, err := mongodb.ObjectID(after)
		if err != nil {
			return nil, err
		}

		filter[fieldID] = bson.M{"$gt": oid}
	}

	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: fieldID, Value: 1}}).SetLimit(int64(limit)))
}

// SetLedgerTxRef sets the ledger reference of a credential that has none. It reports whether the credential was updated.
func (s *Store) SetLedgerTxRef(ctx context.Context, id credential.ID, txRef string) (bool, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return false, err
	}

	res, err := s.collection().UpdateOne(ctx,
		bson.M{fieldID: oid, fieldLedgerTxRef: unanchored()},
		bson.M{"$set": bson.M{fieldLedgerTxRef: txRef}},
	)
	if err != nil {
		return false, fmt.Errorf("set ledger tx ref: %w", err)
	}

	return res.ModifiedCount > 0, nil
}

func (s *Store) Delete(ctx context.Context, id credential.ID) error {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return err
	}

	res, err := s.collection().DeleteOne(ctx, bson.M{fieldID: oid})
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	if res.DeletedCount == 0 {
		return credential.ErrDataNotFound
	}

	return nil
}

func (s *Store) findOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) (*credential.Credential, error) {
	var doc mongoDocument

	if err := s.collection().FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find credential: %w", err)
	}

	return fromDocument(&doc), nil
}

func (s *Store) find(ctx context.Context, filter interface{},
	opts ...*options.FindOptions) ([]*credential.Credential, error) {
	cursor, err := s.collection().Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find credentials: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []mongoDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}

	result := make([]*credential.Credential, 0, len(docs))
	for i := range docs {
		result = append(result, fromDocument(&docs[i]))
	}

	return result, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}

func toDocument(c *credential.Credential) (*mongoDocument, error) {
	student, err := mongodb.ObjectID(c.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student: %w", err)
	}

	university, err := mongodb.ObjectID(c.UniversityID)
	if err != nil {
		return nil, fmt.Errorf("university: %w", err)
	}

	return &mongoDocument{
		Student:          student,
		University:       university,
		Title:            c.Title,
		ImagePath:        c.ArtifactPath,
		CredentialHash:   c.ContentHash,
		Slug:             c.Slug,
		BlockchainTxHash: c.LedgerTxRef,
		IssueDate:        c.IssuedAt.UTC(),
	}, nil
}

func fromDocument(doc *mongoDocument) *credential.Credential {
	return &credential.Credential{
		ID:           doc.ID.Hex(),
		StudentID:    doc.Student.Hex(),
		UniversityID: doc.University.Hex(),
		Title:        doc.Title,
		ArtifactPath: doc.ImagePath,
		ContentHash:  doc.CredentialHash,
		Slug:         doc.Slug,
		LedgerTxRef:  doc.BlockchainTxHash,
		IssuedAt:     doc.IssueDate,
	}
}
