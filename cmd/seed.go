package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/retailbase/retailctl/internal/config"
	"github.com/retailbase/retailctl/internal/database"
	"github.com/retailbase/retailctl/internal/models"
	"github.com/retailbase/retailctl/internal/seeder"
)

var (
	seedMongoURI     string
	seedDatabase     string
	seedUsers        int
	seedProducts     int
	seedCarts        int
	seedOrders       int
	seedReviews      int
	seedDropFirst    bool
	seedMaxCartItems int
	seedBatchSize    int
	seedRandSeed     int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate MongoDB with synthetic retail data",
	Long: `Generate synthetic users, products, carts, orders and reviews and
insert them in batches. Carts, orders and reviews reference users and
products inserted earlier in the same run.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if seedMongoURI == "" {
			seedMongoURI = cfg.MongoURI
		}
		if seedDatabase == "" {
			seedDatabase = cfg.Database
		}

		ctx := cmd.Context()

		db, err := database.Connect(ctx, seedMongoURI, seedDatabase)
		if err != nil {
			return err
		}
		defer db.Close(context.Background())

		s := seeder.New(db, seeder.Options{
			Users:        seedUsers,
			Products:     seedProducts,
			Carts:        seedCarts,
			Orders:       seedOrders,
			Reviews:      seedReviews,
			DropFirst:    seedDropFirst,
			MaxCartItems: seedMaxCartItems,
			BatchSize:    seedBatchSize,
			Seed:         seedRandSeed,
		})

		if err := s.Run(ctx); err != nil {
			if errors.Is(err, seeder.ErrNoUsers) {
				color.Red("No users found after insert; exiting.")
				return err
			}
			return fmt.Errorf("seeding failed: %w", err)
		}

		printCounts(ctx, db)
		return nil
	},
}

func printCounts(ctx context.Context, db *database.DB) {
	for _, coll := range []string{
		models.UsersCollection,
		models.ProductsCollection,
		models.CartsCollection,
		models.OrdersCollection,
		models.ReviewsCollection,
	} {
		if n, err := db.Count(ctx, coll); err == nil {
			fmt.Printf("  %-9s %d documents\n", coll, n)
		}
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedMongoURI, "mongo-uri", "", "MongoDB URI (default mongodb://localhost:27017)")
	seedCmd.Flags().StringVar(&seedDatabase, "db", "", "Database name (default retail)")
	seedCmd.Flags().IntVar(&seedUsers, "users", 1000, "Number of users to create")
	seedCmd.Flags().IntVar(&seedProducts, "products", 2000, "Number of products to create")
	seedCmd.Flags().IntVar(&seedCarts, "carts", 500, "Number of carts to create")
	seedCmd.Flags().IntVar(&seedOrders, "orders", 1000, "Number of orders to create")
	seedCmd.Flags().IntVar(&seedReviews, "reviews", 2000, "Number of reviews to create")
	seedCmd.Flags().BoolVar(&seedDropFirst, "drop-first", false, "Drop collections before seeding")
	seedCmd.Flags().IntVar(&seedMaxCartItems, "max-cart-items", 6, "Max items per cart")
	seedCmd.Flags().IntVar(&seedBatchSize, "batch-size", 1000, "Documents per insert batch")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "Random seed (0 = time-based)")
}
