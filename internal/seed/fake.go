package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diewo77/commerce-api/internal/models"
)

// Vocabulary for fabricated rows. Plausible values matter more than variety;
// uniqueness comes from the uuid-based fields.
var (
	companySuffixes = []string{"Supply", "Distribution", "Trading", "Logistics", "Group", "Wholesale"}
	companyRoots    = []string{"Northwind", "Atlas", "Meridian", "Crestline", "Bluepeak", "Harbor", "Stonebridge", "Vertex", "Lakeside", "Ironwood"}
	productAdjs     = []string{"Rustic", "Sleek", "Ergonomic", "Refined", "Durable", "Compact", "Handcrafted", "Modern", "Practical", "Premium"}
	productNouns    = []string{"Chair", "Lamp", "Keyboard", "Mug", "Backpack", "Notebook", "Desk", "Bottle", "Headset", "Shelf"}
	productMats     = []string{"Steel", "Wooden", "Cotton", "Granite", "Rubber", "Leather"}
	departments     = []string{"Electronics", "Garden", "Kitchen", "Outdoors", "Office", "Toys", "Health", "Clothing", "Sports", "Books"}
	firstNames      = []string{"Emma", "Louis", "Chloe", "Hugo", "Lea", "Jules", "Alice", "Tom", "Nina", "Paul", "Sarah", "Leo"}
	lastNames       = []string{"Martin", "Bernard", "Dubois", "Moreau", "Laurent", "Simon", "Michel", "Garcia", "Roux", "Fournier"}
	streets         = []string{"Oak Street", "Maple Avenue", "Station Road", "Market Square", "Elm Drive", "River Lane", "Hill Crest", "Cedar Court"}
	cities          = []string{"Lyon", "Paris", "Nantes", "Lille", "Bordeaux", "Toulouse", "Rennes", "Strasbourg"}
)

func randomProvider() models.Provider {
	name := pickString(companyRoots) + " " + pickString(companySuffixes)
	return models.Provider{
		Name:    name,
		Siret:   uuid.NewString(),
		Tel:     randomPhone(),
		Email:   randomEmail(strings.ToLower(strings.Fields(name)[0])),
		Address: randomAddress(),
	}
}

func randomProduct() models.Product {
	return models.Product{
		Name:      pickString(productAdjs) + " " + pickString(productMats) + " " + pickString(productNouns),
		Reference: fmt.Sprintf("978-%09d-%d", rand.Intn(1_000_000_000), rand.Intn(10)),
		Price:     randomPrice(1, 100),
		Quantity:  1 + rand.Intn(100),
	}
}

func randomCategory() models.Category {
	noun := pickString(productNouns)
	return models.Category{
		Name:        pickString(departments),
		Description: fmt.Sprintf("The %s %s is built for everyday use and lasting comfort.", strings.ToLower(pickString(productAdjs)), strings.ToLower(noun)),
	}
}

func randomClient() models.Client {
	first := pickString(firstNames)
	last := pickString(lastNames)
	return models.Client{
		Firstname: first,
		Lastname:  last,
		Email:     randomEmail(strings.ToLower(first) + "." + strings.ToLower(last)),
		Tel:       randomPhone(),
		Address:   randomAddress(),
	}
}

func randomOrder(clientIDs []uint) models.Order {
	return models.Order{
		Ref:        "ORD-" + uuid.NewString()[:8],
		Status:     pickString(models.OrderStatuses),
		TotalPrice: randomPrice(1, 1000),
		Date:       time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		ClientID:   pick(clientIDs),
	}
}

func randomPrice(min, max int) decimal.Decimal {
	v := float64(min) + rand.Float64()*float64(max-min)
	return decimal.NewFromFloat(v).Round(2)
}

func randomPhone() string {
	return fmt.Sprintf("+33 6 %02d %02d %02d %02d", rand.Intn(100), rand.Intn(100), rand.Intn(100), rand.Intn(100))
}

func randomEmail(local string) string {
	return fmt.Sprintf("%s%d@example.com", local, rand.Intn(1000))
}

func randomAddress() string {
	return fmt.Sprintf("%d %s, %s", 1+rand.Intn(200), pickString(streets), pickString(cities))
}

func pickString(list []string) string { return list[rand.Intn(len(list))] }
