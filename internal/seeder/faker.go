package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataGenerator produces synthetic field values from an explicitly owned
// rand source, so a fixed seed yields a reproducible run.
type DataGenerator struct {
	rand    *rand.Rand
	counter int
}

// NewDataGenerator builds a generator. A zero seed falls back to the clock.
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

var (
	firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Irene", "Jack", "Karen", "Liam", "Maria", "Noah", "Olivia", "Peter", "Quinn", "Rosa"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Lopez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Clark", "Lewis", "Walker", "Young"}

	words = []string{"alpha", "beta", "gamma", "delta", "nova", "prime", "quartz", "vertex", "zephyr", "cobalt", "ember", "flux", "granite", "halo", "ion", "jade", "krypton", "lumen", "mist", "onyx", "pixel", "quill", "raven", "slate", "tidal", "umber", "violet", "willow"}

	streetNames = []string{"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Pine Road", "Elm Street", "Park Avenue", "Lake Drive", "Hill Road", "River Way"}
	cityNames   = []string{"Springfield", "Riverton", "Fairview", "Kingsport", "Lakewood", "Milton", "Ashland", "Georgetown", "Clayton", "Dayton"}
	stateAbbrs  = []string{"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "MA", "NY", "OH", "OR", "TX", "UT", "VA", "WA"}

	emailDomains = []string{"example.com", "example.org", "example.net", "mail.test"}
)

func (g *DataGenerator) Name() string {
	return g.Choice(firstNames) + " " + g.Choice(lastNames)
}

// Email is unique per generator: a monotonic counter is folded into the
// local part.
func (g *DataGenerator) Email() string {
	g.counter++
	return fmt.Sprintf("user%d.%04d@%s", g.counter, g.rand.Intn(10000), g.Choice(emailDomains))
}

func (g *DataGenerator) Word() string {
	return g.Choice(words)
}

func (g *DataGenerator) CapitalizedWord() string {
	w := g.Word()
	return strings.ToUpper(w[:1]) + w[1:]
}

// Sentence builds an n-word lowercase sentence with a capitalized head and
// trailing period.
func (g *DataGenerator) Sentence(nWords int) string {
	if nWords < 1 {
		nWords = 1
	}
	parts := make([]string, nWords)
	for i := range parts {
		parts[i] = g.Word()
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (g *DataGenerator) Paragraph(nSentences int) string {
	parts := make([]string, nSentences)
	for i := range parts {
		parts[i] = g.Sentence(g.IntRange(5, 10))
	}
	return strings.Join(parts, " ")
}

func (g *DataGenerator) StreetAddress() string {
	return fmt.Sprintf("%d %s", g.rand.Intn(9999)+1, g.Choice(streetNames))
}

func (g *DataGenerator) City() string {
	return g.Choice(cityNames)
}

func (g *DataGenerator) StateAbbr() string {
	return g.Choice(stateAbbrs)
}

func (g *DataGenerator) Zip() string {
	return fmt.Sprintf("%05d", g.rand.Intn(100000))
}

func (g *DataGenerator) Choice(options []string) string {
	return options[g.rand.Intn(len(options))]
}

// IntRange returns a uniform int in [lo, hi].
func (g *DataGenerator) IntRange(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

// FloatRange returns a uniform float64 in [lo, hi).
func (g *DataGenerator) FloatRange(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

// Pick draws one ID with replacement.
func (g *DataGenerator) Pick(pool []primitive.ObjectID) primitive.ObjectID {
	return pool[g.rand.Intn(len(pool))]
}

// Sample draws k distinct IDs without replacement.
func (g *DataGenerator) Sample(pool []primitive.ObjectID, k int) []primitive.ObjectID {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	out := make([]primitive.ObjectID, 0, k)
	for _, idx := range g.rand.Perm(len(pool))[:k] {
		out = append(out, pool[idx])
	}
	return out
}
