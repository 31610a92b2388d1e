package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

const (
	collectionAdmins  = "admins"
	collectionClients = "clients"
)

// AccountRepository implements ports.AccountRepository over the admins and
// clients collections.
type AccountRepository struct {
	admins  *mongo.Collection
	clients *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		admins:  db.Collection(collectionAdmins),
		clients: db.Collection(collectionClients),
	}
}

type mongoAccount struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password,omitempty"`
	PhoneNo  string             `bson:"phoneNo,omitempty"`
	Address  string             `bson:"address,omitempty"`
}

// hidePassword is applied to every default read.
var hidePassword = bson.M{"password": 0}

func (r *AccountRepository) collection(role domain.Role) (*mongo.Collection, error) {
	switch role {
	case domain.RoleAdmin:
		return r.admins, nil
	case domain.RoleClient:
		return r.clients, nil
	default:
		return nil, fmt.Errorf("unknown account role %q", role)
	}
}

// FindByID loads an account. Unparseable ids are reported as not found.
func (r *AccountRepository) FindByID(ctx context.Context, role domain.Role, id string, opts ports.FindOptions) (*domain.Account, error) {
	col, err := r.collection(role)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findOne(ctx, col, role, bson.M{"_id": oid}, findOptions(opts))
}

// FindByEmail loads an account including its password hash.
func (r *AccountRepository) FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	col, err := r.collection(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findOne(ctx, col, role, bson.M{"email": email}, options.FindOne())
}

func (r *AccountRepository) findOne(ctx context.Context, col *mongo.Collection, role domain.Role, filter bson.M, opts *options.FindOneOptions) (*domain.Account, error) {
	var doc mongoAccount
	if err := col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", role, err)
	}
	return doc.toDomain(role), nil
}

// Save writes the mutable fields of a. An empty PasswordHash leaves the
// stored hash untouched, so accounts read without sensitive fields can be
// saved safely.
func (r *AccountRepository) Save(ctx context.Context, a *domain.Account) error {
	col, err := r.collection(a.Role)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": accountUpdate(a)})
	if err != nil {
		return fmt.Errorf("save %s: %w", a.Role, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates a unique email index on both collections.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, col := range []*mongo.Collection{r.admins, r.clients} {
		if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("%s email index: %w", col.Name(), err)
		}
	}
	return nil
}

func findOptions(opts ports.FindOptions) *options.FindOneOptions {
	o := options.FindOne()
	if !opts.IncludeSensitive {
		o.SetProjection(hidePassword)
	}
	return o
}

func accountUpdate(a *domain.Account) bson.M {
	set := bson.M{
		"name":  a.Name,
		"email": a.Email,
	}
	if a.PasswordHash != "" {
		set["password"] = a.PasswordHash
	}
	if a.Role == domain.RoleClient {
		set["phoneNo"] = a.PhoneNo
		set["address"] = a.Address
	}
	return set
}

func (m mongoAccount) toDomain(role domain.Role) *domain.Account {
	return &domain.Account{
		ID:           m.ID.Hex(),
		Role:         role,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.Password,
		PhoneNo:      m.PhoneNo,
		Address:      m.Address,
	}
}
