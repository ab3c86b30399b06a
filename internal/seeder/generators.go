package seeder

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/retailbase/retailctl/internal/models"
)

var (
	productCategories = []string{"Accessories", "Laptops", "Cables", "Audio", "Home", "Office", "Wearables"}
	productBrands     = []string{"Acme", "Nova", "Zenwave", "Orion", "Atlas", "Nimbus"}
	attributeColors   = []string{"Black", "White", "Red", "Blue", "Green"}
	attributeSizes    = []string{"S", "M", "L", "XL"}
)

// User generates one customer record. The bcrypt hash is computed once per
// run by the caller since every seeded user shares the same placeholder
// password.
func (g *DataGenerator) User(passwordHash string) models.User {
	return models.User{
		Name:         g.Name(),
		Email:        g.Email(),
		PasswordHash: passwordHash,
		Role:         "customer",
		Addresses: []models.Address{
			{
				Label:   "Home",
				Line1:   g.StreetAddress(),
				City:    g.City(),
				State:   g.StateAbbr(),
				Zip:     g.Zip(),
				Country: "US",
			},
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Product generates the i-th product; i only determines the SKU.
func (g *DataGenerator) Product(i int) models.Product {
	return models.Product{
		SKU:         fmt.Sprintf("SKU-%06d", i),
		Name:        g.CapitalizedWord() + " " + g.CapitalizedWord(),
		Description: g.Sentence(12),
		Categories:  []string{g.Choice(productCategories)},
		Brand:       g.Choice(productBrands),
		Price:       round2(g.FloatRange(5.0, 999.0)),
		Currency:    "USD",
		Images:      []string{},
		Stock:       g.IntRange(0, 1000),
		Rating:      round1(g.FloatRange(3.0, 5.0)),
		Attributes: map[string]string{
			"color": g.Choice(attributeColors),
			"size":  g.Choice(attributeSizes),
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Cart generates a cart of 1..min(maxItems, pool) distinct products.
func (g *DataGenerator) Cart(userID primitive.ObjectID, productIDs []primitive.ObjectID, maxItems int) models.Cart {
	k := g.IntRange(1, min(maxItems, len(productIDs)))
	items := make([]models.CartItem, 0, k)
	for _, pid := range g.Sample(productIDs, k) {
		items = append(items, models.CartItem{
			ProductID: pid,
			Qty:       g.IntRange(1, 5),
		})
	}
	return models.Cart{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}
}

// Order generates an order of 1..min(6, pool) distinct products. Line
// prices are drawn independently of the stored product price; aggregations
// that need real prices join against products instead.
func (g *DataGenerator) Order(userID primitive.ObjectID, productIDs []primitive.ObjectID) models.Order {
	k := g.IntRange(1, min(6, len(productIDs)))
	items := make([]models.OrderItem, 0, k)
	subtotal := 0.0
	for _, pid := range g.Sample(productIDs, k) {
		qty := g.IntRange(1, 3)
		price := round2(g.FloatRange(5.0, 199.0))
		subtotal += price * float64(qty)
		items = append(items, models.OrderItem{
			ProductID: pid,
			Qty:       qty,
			Price:     price,
		})
	}
	subtotal = round2(subtotal)
	shipping := round2(g.FloatRange(0, 12))
	tax := round2(subtotal * 0.07)
	total := round2(subtotal + shipping + tax)
	return models.Order{
		UserID:            userID,
		Items:             items,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Tax:               tax,
		Total:             total,
		PaymentStatus:     g.Choice(models.PaymentStatuses),
		FulfillmentStatus: g.Choice(models.FulfillmentStatuses),
		CreatedAt:         time.Now().UTC(),
	}
}

func (g *DataGenerator) Review(userID, productID primitive.ObjectID) models.Review {
	return models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    g.IntRange(1, 5),
		Title:     g.Sentence(3),
		Body:      g.Paragraph(2),
		CreatedAt: time.Now().UTC(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
