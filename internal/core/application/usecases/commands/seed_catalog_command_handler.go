package commands

import (
	"context"
	"log/slog"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
)

type seedItem struct {
	name        string
	description string
	price       float64
	category    item.Category
	imageURL    string
	store       string
	prepTime    int
	rating      float64
}

func defaultCatalog() []seedItem {
	return []seedItem{
		{"Classic Cheeseburger", "Juicy beef patty with cheese, lettuce, tomato, and special sauce", 10.99, item.CategoryFood, "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&q=80", "Burger House", 12, 4.7},
		{"Organic Milk (1 Gallon)", "Fresh organic whole milk from local farms", 5.99, item.CategoryGrocery, "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=400&q=80", "Fresh Mart", 5, 4.5},
		{"Vitamin C Supplements", "High-potency vitamin C tablets, 60 count", 15.99, item.CategoryPharmacy, "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400&q=80", "HealthPlus Pharmacy", 5, 4.7},
		{"Express Package Delivery", "Same-day package delivery within the city", 8.99, item.CategoryPackage, "https://images.unsplash.com/photo-1566576912321-d58ddd7a6088?w=400&q=80", "GrabGo Express", 10, 4.5},
		{"Caesar Salad", "Crispy romaine, parmesan, croutons, and Caesar dressing", 9.99, item.CategoryFood, "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&q=80", "Green Garden", 8, 4.4},
		{"First Aid Kit", "Complete emergency first aid kit for home and travel", 24.99, item.CategoryPharmacy, "https://images.unsplash.com/photo-1603398938378-e54eab446dde?w=400&q=80", "HealthPlus Pharmacy", 5, 4.8},
		{"Margherita Pizza", "Classic Italian pizza with fresh tomatoes, mozzarella, and basil", 14.99, item.CategoryFood, "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&q=80", "Mario's Pizzeria", 20, 4.8},
		{"Chicken Teriyaki Bowl", "Grilled chicken with teriyaki sauce, rice, and vegetables", 12.99, item.CategoryFood, "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&q=80", "Tokyo Kitchen", 15, 4.6},
		{"Fresh Vegetables Pack", "Assorted fresh vegetables including carrots, broccoli, and peppers", 12.99, item.CategoryGrocery, "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400&q=80", "Fresh Mart", 5, 4.6},
		{"Fresh Salmon Sushi", "Premium salmon nigiri and maki rolls combo", 18.99, item.CategoryFood, "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&q=80", "Sakura Sushi", 18, 4.9},
	}
}

// SeedCatalogCommandHandler populates an empty catalog with the default
// item set. Seeding is idempotent at the catalog level: a non-empty
// catalog is left untouched.
type SeedCatalogCommandHandler struct {
	uowFactory ItemUoWFactory
	logger     *slog.Logger
}

// NewSeedCatalogCommandHandler creates a handler for catalog seeding.
func NewSeedCatalogCommandHandler(uowFactory ItemUoWFactory, logger *slog.Logger) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "seed_catalog_handler"),
	}
}

// Handle seeds the default catalog and returns the number of items added.
func (h SeedCatalogCommandHandler) Handle(ctx context.Context) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	count, err := itemRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		h.logger.InfoContext(ctx, "catalog already populated, skipping seed", "items", count)
		return 0, nil
	}

	for _, s := range defaultCatalog() {
		created, itemErr := item.NewItem(
			kernel.NewUUID(), s.name, s.description, s.price, s.category,
			s.imageURL, s.store, s.prepTime, s.rating,
		)
		if itemErr != nil {
			return 0, itemErr
		}
		if err = itemRepo.Add(ctx, created); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	seeded := len(defaultCatalog())
	h.logger.InfoContext(ctx, "catalog seeded", "items", seeded)
	return seeded, nil
}
