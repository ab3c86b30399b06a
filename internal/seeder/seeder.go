package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retailbase/retailctl/internal/database"
	"github.com/retailbase/retailctl/internal/hash"
	"github.com/retailbase/retailctl/internal/models"
)

// ErrNoUsers is returned when the users collection is empty after the
// insert step; every later phase depends on a non-empty user pool.
var ErrNoUsers = errors.New("no users found after insert")

// SeedPassword is the placeholder password every seeded user gets. Only
// its bcrypt hash is persisted.
const SeedPassword = "Test1234!"

type Options struct {
	Users        int
	Products     int
	Carts        int
	Orders       int
	Reviews      int
	DropFirst    bool
	MaxCartItems int
	BatchSize    int
	Seed         int64
}

type Seeder struct {
	db   *database.DB
	gen  *DataGenerator
	opts Options
}

func New(db *database.DB, opts Options) *Seeder {
	return &Seeder{
		db:   db,
		gen:  NewDataGenerator(opts.Seed),
		opts: opts,
	}
}

// Run executes the full seeding sequence: optional drop, indexes, then
// users → products → carts → orders → reviews, each generated in memory
// and written in batches. Referential integrity comes from the ID pools
// read back after each phase, not from the storage layer.
func (s *Seeder) Run(ctx context.Context) error {
	color.Cyan("🌱 Seeding database %q...", s.db.Name())

	if s.opts.DropFirst {
		color.Yellow("🗑️  Dropping existing collections (users, products, carts, orders, reviews)...")
		if err := s.db.DropCollections(ctx,
			models.UsersCollection,
			models.ProductsCollection,
			models.CartsCollection,
			models.OrdersCollection,
			models.ReviewsCollection,
		); err != nil {
			return err
		}
	}

	if err := s.createIndexes(ctx); err != nil {
		return err
	}

	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return ErrNoUsers
	}

	productIDs, err := s.seedProducts(ctx)
	if err != nil {
		return err
	}

	plan := planCounts(s.opts, len(userIDs), len(productIDs))

	carts, err := s.seedCarts(ctx, plan.Carts, userIDs, productIDs)
	if err != nil {
		return err
	}

	orders, err := s.seedOrders(ctx, plan.Orders, userIDs, productIDs)
	if err != nil {
		return err
	}

	reviews, err := s.seedReviews(ctx, plan.Reviews, userIDs, productIDs)
	if err != nil {
		return err
	}

	color.Green("\n✅ Seeding complete")
	color.Green("Summary: users=%d, products=%d, carts=%d, orders=%d, reviews=%d",
		len(userIDs), len(productIDs), carts, orders, reviews)
	return nil
}

func (s *Seeder) createIndexes(ctx context.Context) error {
	color.Cyan("📋 Creating indexes...")

	_, err := s.db.Collection(models.ProductsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}

	_, err = s.db.Collection(models.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	_, err = s.db.Collection(models.CartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create cart user index: %w", err)
	}

	_, err = s.db.Collection(models.OrdersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create order index: %w", err)
	}

	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %d users...", s.opts.Users)

	// One hash for the shared placeholder password; bcrypt per row would
	// dominate the whole run.
	passwordHash, err := hash.Password(SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	docs := make([]interface{}, 0, max(s.opts.Users, 0))
	for i := 0; i < s.opts.Users; i++ {
		docs = append(docs, s.gen.User(passwordHash))
	}

	if _, err := s.db.InsertBatches(ctx, models.UsersCollection, docs, s.opts.BatchSize); err != nil {
		return nil, err
	}

	ids, err := s.db.CollectIDs(ctx, models.UsersCollection)
	if err != nil {
		return nil, err
	}
	color.Green("  ✅ users inserted (%d)", len(ids))
	return ids, nil
}

func (s *Seeder) seedProducts(ctx context.Context) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %d products...", s.opts.Products)

	docs := make([]interface{}, 0, max(s.opts.Products, 0))
	for i := 1; i <= s.opts.Products; i++ {
		docs = append(docs, s.gen.Product(i))
	}

	if _, err := s.db.InsertBatches(ctx, models.ProductsCollection, docs, s.opts.BatchSize); err != nil {
		return nil, err
	}

	ids, err := s.db.CollectIDs(ctx, models.ProductsCollection)
	if err != nil {
		return nil, err
	}
	color.Green("  ✅ products inserted (%d)", len(ids))
	return ids, nil
}

// phasePlan holds the effective count for each dependent phase after the
// pool caps are applied.
type phasePlan struct {
	Carts   int
	Orders  int
	Reviews int
}

// planCounts caps the requested dependent-entity counts against the pools:
// carts and orders cannot exceed the user pool (carts additionally hold one
// per user via the unique index), reviews cannot exceed twice the requested
// product count. An empty product pool zeroes all three, since every
// dependent record references a product.
func planCounts(opts Options, nUsers, nProducts int) phasePlan {
	if nProducts == 0 {
		return phasePlan{}
	}
	return phasePlan{
		Carts:   min(opts.Carts, nUsers),
		Orders:  min(opts.Orders, nUsers),
		Reviews: min(opts.Reviews, 2*opts.Products),
	}
}

// seedCarts assigns carts to distinct users: the unique index over user_id
// allows at most one cart per user, so users are sampled without
// replacement.
func (s *Seeder) seedCarts(ctx context.Context, n int, userIDs, productIDs []primitive.ObjectID) (int, error) {
	color.Cyan("  📝 Seeding %d carts...", n)

	docs := make([]interface{}, 0, max(n, 0))
	for _, uid := range s.gen.Sample(userIDs, n) {
		docs = append(docs, s.gen.Cart(uid, productIDs, s.opts.MaxCartItems))
	}

	inserted, err := s.db.InsertBatches(ctx, models.CartsCollection, docs, s.opts.BatchSize)
	if err != nil {
		return inserted, err
	}
	color.Green("  ✅ carts inserted (%d)", inserted)
	return inserted, nil
}

// seedOrders draws users with replacement: multiple orders per user are
// fine, unlike carts.
func (s *Seeder) seedOrders(ctx context.Context, n int, userIDs, productIDs []primitive.ObjectID) (int, error) {
	color.Cyan("  📝 Seeding %d orders...", n)

	docs := make([]interface{}, 0, max(n, 0))
	for i := 0; i < n; i++ {
		docs = append(docs, s.gen.Order(s.gen.Pick(userIDs), productIDs))
	}

	inserted, err := s.db.InsertBatches(ctx, models.OrdersCollection, docs, s.opts.BatchSize)
	if err != nil {
		return inserted, err
	}
	color.Green("  ✅ orders inserted (%d)", inserted)
	return inserted, nil
}

func (s *Seeder) seedReviews(ctx context.Context, n int, userIDs, productIDs []primitive.ObjectID) (int, error) {
	color.Cyan("  📝 Seeding %d reviews...", n)

	docs := make([]interface{}, 0, max(n, 0))
	for i := 0; i < n; i++ {
		docs = append(docs, s.gen.Review(s.gen.Pick(userIDs), s.gen.Pick(productIDs)))
	}

	inserted, err := s.db.InsertBatches(ctx, models.ReviewsCollection, docs, s.opts.BatchSize)
	if err != nil {
		return inserted, err
	}
	color.Green("  ✅ reviews inserted (%d)", inserted)
	return inserted, nil
}
