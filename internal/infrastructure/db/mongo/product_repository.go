package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

const collectionProducts = "products"

// ProductRepository implements ports.ProductRepository using MongoDB.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

// mongoProduct is the stored shape; field names follow the existing collection.
type mongoProduct struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"productName"                validate:"required"`
	Price     float64            `bson:"productPrice"               validate:"gte=0"`
	Quantity  int                `bson:"productQuantity"            validate:"gte=0"`
	AddedOn   string             `bson:"productAddedOn,omitempty"`
	UpdatedOn string             `bson:"productUpdatedOn,omitempty"`
}

// Create validates and inserts a new product; the returned copy carries the
// generated id.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := toMongoProduct(p)
	doc.ID = primitive.NilObjectID
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert product: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid

	return doc.toDomain(), nil
}

// FindByID retrieves a product by its hex ObjectID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.Wrap(domain.KindInvalidID, "invalid product id", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoProduct
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

// Save replaces the stored document with p. The last writer wins.
func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := toMongoProduct(p)
	if doc.ID.IsZero() {
		return nil, domain.ErrInvalidID.WithMessage("invalid product id")
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return doc.toDomain(), nil
}

func toMongoProduct(p *domain.Product) mongoProduct {
	oid, _ := primitive.ObjectIDFromHex(p.ID)
	return mongoProduct{
		ID:        oid,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		AddedOn:   p.AddedOn,
		UpdatedOn: p.UpdatedOn,
	}
}

func (m mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Price:     m.Price,
		Quantity:  m.Quantity,
		AddedOn:   m.AddedOn,
		UpdatedOn: m.UpdatedOn,
	}
}
