package mongo

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

func TestValidateDocument_Product(t *testing.T) {
	if err := validateDocument(mongoProduct{Name: "Latte", Price: 4, Quantity: 0}); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	err := validateDocument(mongoProduct{Name: "", Price: -1, Quantity: -5})
	if !errors.Is(err, domain.ErrSchemaViolation) {
		t.Fatalf("expected schema violation, got %v", err)
	}
	for _, want := range []string{"productName is required", "productPrice must be >= 0", "productQuantity must be >= 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("message %q missing %q", err.Error(), want)
		}
	}
}

func TestProductMapping_RoundTrip(t *testing.T) {
	p := &domain.Product{
		ID:        "65f1c2a9e4b0a1b2c3d4e5f6",
		Name:      "Cortado",
		Price:     3.2,
		Quantity:  7,
		AddedOn:   "1/1/2026, 9:00:00 AM",
		UpdatedOn: "1/2/2026, 9:00:00 AM",
	}

	got := toMongoProduct(p).toDomain()
	if *got != *p {
		t.Fatalf("mapping lost data: want %+v, got %+v", p, got)
	}
}

func TestProductMapping_StoredFieldNames(t *testing.T) {
	raw, err := bson.Marshal(toMongoProduct(&domain.Product{Name: "Mocha", Price: 5, Quantity: 2, AddedOn: "x"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := m["_id"]; ok {
		t.Error("zero id must be omitted so the server assigns one")
	}
	for _, key := range []string{"productName", "productPrice", "productQuantity", "productAddedOn"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing stored field %q in %v", key, m)
		}
	}
	if _, ok := m["productUpdatedOn"]; ok {
		t.Error("empty updatedOn must be omitted")
	}
}

func TestFindOptions_HidesPasswordByDefault(t *testing.T) {
	o := findOptions(ports.FindOptions{})
	if o.Projection == nil {
		t.Fatal("default lookup must project the password out")
	}

	o = findOptions(ports.FindOptions{IncludeSensitive: true})
	if o.Projection != nil {
		t.Fatalf("sensitive lookup must not project, got %v", o.Projection)
	}
}

func TestAccountUpdate(t *testing.T) {
	admin := accountUpdate(&domain.Account{Role: domain.RoleAdmin, Name: "Root", Email: "r@x", PasswordHash: "$2a$10$hash"})
	if admin["password"] != "$2a$10$hash" {
		t.Errorf("password not set: %v", admin)
	}
	if _, ok := admin["phoneNo"]; ok {
		t.Error("admins have no phone number")
	}

	noHash := accountUpdate(&domain.Account{Role: domain.RoleClient, Name: "C", Email: "c@x", PhoneNo: "123", Address: "Main St"})
	if _, ok := noHash["password"]; ok {
		t.Error("empty hash must not overwrite the stored password")
	}
	if noHash["phoneNo"] != "123" || noHash["address"] != "Main St" {
		t.Errorf("client fields missing: %v", noHash)
	}
}

func TestAccountMapping(t *testing.T) {
	oid := primitive.NewObjectID()
	a := mongoAccount{ID: oid, Name: "Dave", Email: "d@x", Password: "h", PhoneNo: "1", Address: "A"}.toDomain(domain.RoleClient)

	if a.ID != oid.Hex() || a.Role != domain.RoleClient || a.PasswordHash != "h" || a.Address != "A" {
		t.Fatalf("unexpected account: %+v", a)
	}
}

func TestAccountRepository_CollectionForRole(t *testing.T) {
	r := &AccountRepository{}
	if _, err := r.collection(domain.Role("guest")); err == nil {
		t.Fatal("unknown role must error")
	}
}
