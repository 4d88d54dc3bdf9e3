package catalog

// Default returns the stock expedition-sector catalog. A fresh server
// uses this when no custom catalog is configured, so the market is
// live out of the box.
func Default() *Catalog {
	goods := []Good{
		{ID: "water", Name: "Purified Water", Category: "consumable", BasePrice: 12, UnitVolume: 1, Description: "Reclaimed and triple-filtered. Tastes like victory."},
		{ID: "food", Name: "Ration Packs", Category: "consumable", BasePrice: 25, UnitVolume: 1, Description: "Nutritionally complete. Flavor sold separately."},
		{ID: "ore", Name: "Raw Ore", Category: "raw", BasePrice: 40, UnitVolume: 4, Description: "Unrefined asteroid ore, mostly iron and nickel."},
		{ID: "fuel", Name: "Hydrogen Fuel", Category: "raw", BasePrice: 55, UnitVolume: 2, Description: "Cryogenic hydrogen, skimmed from gas giants."},
		{ID: "alloys", Name: "Hull Alloys", Category: "industrial", BasePrice: 110, UnitVolume: 3, Description: "Refined structural alloys rated for vacuum work."},
		{ID: "electronics", Name: "Electronics", Category: "industrial", BasePrice: 180, UnitVolume: 1, Description: "Flight-grade boards and sensor packages."},
		{ID: "medicine", Name: "Med Supplies", Category: "consumable", BasePrice: 240, UnitVolume: 1, Description: "Broad-spectrum pharma and trauma kits."},
		{ID: "luxuries", Name: "Luxury Goods", Category: "trade", BasePrice: 400, UnitVolume: 2, Description: "The things spacers miss most about planets."},
	}
	stations := []Station{
		{
			ID:       "kepler-mining",
			Name:     "Kepler Mining Platform",
			Produces: []string{"ore"},
			Consumes: []string{"food", "water", "medicine"},
		},
		{
			ID:       "helios-refinery",
			Name:     "Helios Refinery",
			Produces: []string{"alloys", "fuel"},
			Consumes: []string{"ore", "food"},
		},
		{
			ID:       "meridian-foundry",
			Name:     "Meridian Foundry",
			Produces: []string{"electronics"},
			Consumes: []string{"alloys", "water"},
		},
		{
			ID:       "arcadia-habitat",
			Name:     "Arcadia Habitat Ring",
			Produces: []string{"food", "water", "medicine"},
			Consumes: []string{"electronics", "luxuries", "fuel"},
		},
		{
			ID:       "freeport-nine",
			Name:     "Freeport Nine",
			Produces: []string{"luxuries"},
			Consumes: []string{"alloys", "medicine"},
		},
	}
	return New(goods, stations)
}
