package service

func ptr[T any](v T) *T {
	return &v
}

// SeedProducts returns the fixed catalog the seed run repopulates. A fresh
// slice is built on every call so callers can never mutate the definitions.
func SeedProducts() []CreateProductInput {
	return []CreateProductInput{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Price:       ptr(75.0),
			Description: ptr("Introducing the softest crew neck in the collection, made from recycled cotton fleece."),
			Stock:       ptr(7),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "male",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Price:       ptr(200.0),
			Description: ptr("A lightweight quilted jacket with premium insulation for year-round wear."),
			Stock:       ptr(5),
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      "male",
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Price:       ptr(130.0),
			Description: ptr("A versatile bomber with a double layer mesh and matte finish."),
			Stock:       ptr(10),
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      "male",
			Tags:        []string{"shirt"},
			Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Long Sleeve Tee",
			Price:       ptr(45.0),
			Description: ptr("A long sleeve tee in a sueded jersey fabric with an updated silhouette."),
			Stock:       ptr(50),
			Sizes:       []string{"XS", "S", "M", "L"},
			Gender:      "male",
			Tags:        []string{"shirt"},
			Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Price:       ptr(225.0),
			Description: ptr("A cropped silhouette with a fixed hood and ripstop shell, insulated for warmth."),
			Stock:       ptr(85),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "female",
			Tags:        []string{"jacket"},
			Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
		},
		{
			Title:       "Women's Chill Half Zip Cropped Hoodie",
			Price:       ptr(130.0),
			Description: ptr("A cropped hoodie in recycled fleece with an elastic hem and half-zip closure."),
			Stock:       ptr(10),
			Sizes:       []string{"XS", "S", "M", "XXL"},
			Gender:      "female",
			Tags:        []string{"hoodie"},
			Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
		},
		{
			Title:       "Women's Slouchy Crew Neck Sweatshirt",
			Price:       ptr(110.0),
			Slug:        ptr("womens_slouchy_crew_neck_sweatshirt"),
			Description: ptr("An oversized crew in heavyweight fleece with dropped shoulders."),
			Stock:       ptr(9),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "female",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740454-00-A_0_2000.jpg", "1740454-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Price:       ptr(30.0),
			Description: ptr("A soft long sleeve tee for kids with a graphic print front and back."),
			Stock:       ptr(10),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
		},
		{
			Title:       "Kids Checkered Tee",
			Price:       ptr(30.0),
			Description: ptr("A classic checkered tee in 100% peruvian cotton."),
			Stock:       ptr(10),
			Sizes:       []string{"XS", "S", "M", "L"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"1742695-00-A_1_2000.jpg", "1742695-00-A_3.jpg"},
		},
		{
			Title:       "3D Large Wordmark Tee",
			Price:       ptr(35.0),
			Description: ptr("A unisex tee in 100% cotton with a 3D silicone-printed wordmark on the chest."),
			Stock:       ptr(15),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "unisex",
			Tags:        []string{"shirt"},
			Images:      []string{"8764734-00-A_0_2000.jpg", "8764734-00-A_1.jpg"},
		},
		{
			Title:       "Relaxed Fit Joggers",
			Price:       ptr(100.0),
			Description: ptr("Relaxed joggers in a french terry fabric with an adjustable drawstring."),
			Sizes:       []string{"S", "M", "L", "XL"},
			Gender:      "unisex",
			Tags:        []string{"pants"},
			Images:      []string{"1740059-00-A_0_2000.jpg", "1740059-00-A_1.jpg"},
		},
		{
			Title:       "Logo Beanie",
			Price:       ptr(25.0),
			Description: ptr("A ribbed knit beanie with an embroidered logo patch."),
			Stock:       ptr(20),
			Sizes:       []string{"ONE"},
			Gender:      "unisex",
			Tags:        []string{"hats"},
			Images:      []string{"1740417-00-A_0_2000.jpg"},
		},
	}
}
