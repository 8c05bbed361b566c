package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

const investmentsCollection = "investments"

type InvestmentRepository struct {
	coll *mongo.Collection
}

func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{coll: db.Collection(investmentsCollection)}
}

// Create inserts a new investment document. The id is assigned by the
// service layer (uuid), so no fetch-back is needed.
func (r *InvestmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

// FindByID retrieves an investment regardless of soft-delete state.
func (r *InvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Investment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment: %w", err)
	}
	return &inv, nil
}

// Update replaces the stored document, owner list included, in a single
// atomic write (last-write-wins, no separate join table).
func (r *InvestmentRepository) Update(ctx context.Context, inv *domain.Investment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": inv.ID}, inv)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

// ListActive returns active investments sorted by investment date
// descending. A non-empty ownerID scopes the query to that co-owner.
func (r *InvestmentRepository) ListActive(ctx context.Context, ownerID string) ([]*domain.Investment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"is_active": true}
	if ownerID != "" {
		filter["owners"] = ownerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "investment_date", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer cur.Close(ctx)

	var invs []*domain.Investment
	if err := cur.All(ctx, &invs); err != nil {
		return nil, fmt.Errorf("decode investments: %w", err)
	}
	return invs, nil
}

// EnsureIndexes creates the indexes backing owner-scoped listing.
func (r *InvestmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owners", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "investment_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
