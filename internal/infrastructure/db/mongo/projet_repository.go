package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projethub/projethub/internal/core/domain"
)

const projetsCollection = "projets"

// ProjetRepository persists projets in the "projets" collection.
type ProjetRepository struct {
	coll *mongo.Collection
}

func NewProjetRepository(db *mongo.Database) *ProjetRepository {
	return &ProjetRepository{coll: db.Collection(projetsCollection)}
}

type projetDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Category    string             `bson:"category"`
	CategoryID  string             `bson:"category_id,omitempty"`
	Description string             `bson:"description"`
	AuthorID    primitive.ObjectID `bson:"author"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *projetDoc) toDomain() *domain.Projet {
	return &domain.Projet{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Category:    d.Category,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		AuthorID:    d.AuthorID.Hex(),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// EnsureIndexes creates the lookup indexes used by listing and ownership
// queries.
func (r *ProjetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProjetRepository) Create(ctx context.Context, projet *domain.Projet) (*domain.Projet, error) {
	authorID, err := primitive.ObjectIDFromHex(projet.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	doc := projetDoc{
		Title:       projet.Title,
		Category:    projet.Category,
		CategoryID:  projet.CategoryID,
		Description: projet.Description,
		AuthorID:    authorID,
		CreatedAt:   projet.CreatedAt,
		UpdatedAt:   projet.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert projet: %w", err)
	}

	created := *projet
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjetRepository) FindByID(ctx context.Context, id string) (*domain.Projet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjetNotFound
	}

	var doc projetDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjetNotFound
		}
		return nil, fmt.Errorf("find projet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjetRepository) FindPage(ctx context.Context, skip, limit int64) ([]*domain.Projet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projets: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProjets(ctx, cursor)
}

func (r *ProjetRepository) FindByAuthor(ctx context.Context, authorID string) ([]*domain.Projet, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"author": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projets by author: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProjets(ctx, cursor)
}

func (r *ProjetRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count projets: %w", err)
	}
	return n, nil
}

func (r *ProjetRepository) Update(ctx context.Context, projet *domain.Projet) error {
	oid, err := primitive.ObjectIDFromHex(projet.ID)
	if err != nil {
		return domain.ErrProjetNotFound
	}

	// The author field is never part of the update document: ownership is
	// immutable after creation.
	update := bson.M{"$set": bson.M{
		"title":       projet.Title,
		"category":    projet.Category,
		"category_id": projet.CategoryID,
		"description": projet.Description,
		"updated_at":  projet.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update projet: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjetNotFound
	}
	return nil
}

func (r *ProjetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjetNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete projet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjetNotFound
	}
	return nil
}

func decodeProjets(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Projet, error) {
	projets := make([]*domain.Projet, 0)
	for cursor.Next(ctx) {
		var doc projetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode projet: %w", err)
		}
		projets = append(projets, doc.toDomain())
	}
	return projets, cursor.Err()
}
