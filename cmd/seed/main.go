package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/service"

	_ "github.com/raihanetx/submonth-z/migrations"
)

// Seeds a small demo catalog. Run with: go run ./cmd/seed serve
func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		existing, _ := app.FindRecordsByFilter("categories", "name='Streaming'", "", 1, 0, nil)
		if len(existing) > 0 {
			fmt.Println("Demo catalog already seeded")
			return nil
		}

		categories, err := app.FindCollectionByNameOrId("categories")
		if err != nil {
			return err
		}
		products, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return err
		}
		pricing, err := app.FindCollectionByNameOrId("product_pricing")
		if err != nil {
			return err
		}

		type demoTier struct {
			duration string
			price    float64
		}
		type demoProduct struct {
			name  string
			short string
			tiers []demoTier
		}

		demo := []struct {
			category string
			icon     string
			products []demoProduct
		}{
			{
				category: "Streaming",
				icon:     "fa-solid fa-clapperboard",
				products: []demoProduct{
					{"Netflix Premium", "4K UHD shared profile", []demoTier{{"1 Month", 350}, {"3 Months", 950}}},
					{"Spotify Premium", "Individual plan, own email", []demoTier{{"1 Month", 150}}},
				},
			},
			{
				category: "Design",
				icon:     "fa-solid fa-pen-nib",
				products: []demoProduct{
					{"Canva Pro", "Teams invite, 1 year", []demoTier{{"1 Year", 450}}},
				},
			},
		}

		for _, entry := range demo {
			category := core.NewRecord(categories)
			category.Set("name", entry.category)
			category.Set("slug", service.Slugify(entry.category))
			category.Set("icon", entry.icon)
			if err := app.Save(category); err != nil {
				return err
			}

			for _, p := range entry.products {
				product := core.NewRecord(products)
				product.Set("category_id", category.Id)
				product.Set("name", p.name)
				product.Set("slug", service.Slugify(p.name))
				product.Set("short_description", p.short)
				if err := app.Save(product); err != nil {
					return err
				}

				for order, t := range p.tiers {
					tier := core.NewRecord(pricing)
					tier.Set("product_id", product.Id)
					tier.Set("duration", t.duration)
					tier.Set("price", t.price)
					tier.Set("sort_order", order)
					if err := app.Save(tier); err != nil {
						return err
					}
				}

				fmt.Printf("Created product: %s\n", p.name)
			}
		}

		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
