package seeders

import (
	"time"

	"github.com/google/uuid"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/storage"
)

func init() {
	Register("products", SeedProducts)
}

type seedProduct struct {
	name        string
	description string
	price       float64
	category    string
	image       string
}

var catalogue = []seedProduct{
	{"Chocolate Truffle Cake", "Rich dark chocolate sponge layered with silky truffle ganache.", 720, "cakes", "assets/chocolate-truffle.jpg"},
	{"Classic Vanilla Cake", "Light vanilla sponge with whipped buttercream frosting.", 560, "cakes", "assets/vanilla-cake.jpg"},
	{"Red Velvet Cake", "Cocoa-kissed crimson layers with cream cheese frosting.", 840, "cakes", "assets/red-velvet.jpg"},
	{"Butter Croissant", "Flaky, golden croissant laminated with French butter.", 90, "pastries", "assets/croissant.jpg"},
	{"Chocolate Eclair", "Choux pastry filled with vanilla custard, dipped in chocolate.", 110, "pastries", "assets/eclair.jpg"},
	{"Blueberry Muffin", "Buttery muffin bursting with whole blueberries.", 95, "pastries", "assets/blueberry-muffin.jpg"},
	{"Chocolate Chip Cookies", "Chewy cookies with dark chocolate chunks, half a dozen.", 180, "cookies", "assets/choc-chip-cookies.jpg"},
	{"Almond Biscotti", "Twice-baked Italian cookies with roasted almonds.", 160, "cookies", "assets/biscotti.jpg"},
	{"Sourdough Loaf", "Naturally leavened, slow-fermented country loaf.", 220, "breads", "assets/sourdough.jpg"},
	{"Multigrain Bread", "Hearty sandwich loaf with seven grains and seeds.", 140, "breads", "assets/multigrain.jpg"},
}

// SeedProducts replaces the product collection with the standard catalogue.
func SeedProducts() error {
	repo := repositories.NewProductRepository(storage.Use(config.StorageDefault()))

	now := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	products := make([]models.Product, 0, len(catalogue))
	for _, p := range catalogue {
		products = append(products, models.Product{
			ID:          uuid.NewString(),
			Name:        p.name,
			Description: p.description,
			Price:       p.price,
			Category:    p.category,
			Image:       p.image,
			Available:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return repo.Replace(products)
}
