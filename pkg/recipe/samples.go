package recipe

import "recipe-app/domain"

// Sample ids are fixed so reseeding overwrites instead of duplicating.
const (
	SampleCarbonaraID = "sample-spaghetti-carbonara"
	SampleStirFryID   = "sample-chicken-stir-fry"
	SampleChocChipID  = "sample-chocolate-chip-cookies"
)

// SampleRecipes is the starter catalogue written into an empty collection.
func SampleRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:              SampleCarbonaraID,
			Name:            "Spaghetti Carbonara",
			Description:     "A classic Italian pasta dish with eggs, cheese, pancetta, and black pepper",
			ImageURL:        "recipes/carbonara.jpg",
			PrepTime:        15,
			CookTime:        20,
			Servings:        4,
			Cuisine:         "Italian",
			Category:        "Dinner",
			DifficultyLevel: domain.DifficultyMedium,
			Ingredients: []string{
				"400g spaghetti",
				"200g pancetta or guanciale",
				"4 large eggs",
				"100g Pecorino Romano cheese",
				"100g Parmigiano Reggiano",
				"Black pepper",
				"Salt",
			},
			Instructions: []string{
				"Bring a large pot of salted water to boil",
				"Cook spaghetti according to package instructions",
				"Meanwhile, cook diced pancetta until crispy",
				"Beat eggs with grated cheese and pepper",
				"Drain pasta, reserving some pasta water",
				"Mix hot pasta with egg mixture and pancetta",
				"Add pasta water if needed for creaminess",
				"Serve immediately with extra cheese and pepper",
			},
			DietaryTags: []string{"Italian", "Pasta"},
		},
		{
			ID:              SampleStirFryID,
			Name:            "Chicken Stir Fry",
			Description:     "Quick and healthy Asian stir fry with tender chicken and crisp vegetables",
			ImageURL:        "recipes/stirfry.jpg",
			PrepTime:        15,
			CookTime:        20,
			Servings:        4,
			Cuisine:         "Asian",
			Category:        "Dinner",
			DifficultyLevel: domain.DifficultyEasy,
			Ingredients: []string{
				"500g chicken breast, sliced",
				"2 cups mixed vegetables",
				"3 cloves garlic, minced",
				"1 inch ginger, grated",
				"3 tbsp soy sauce",
				"2 tbsp vegetable oil",
				"Salt and pepper to taste",
			},
			Instructions: []string{
				"Slice chicken into thin strips",
				"Heat oil in a large wok or pan",
				"Add garlic and ginger, stir-fry until fragrant",
				"Add chicken and cook until golden",
				"Add vegetables and stir-fry until crisp-tender",
				"Add soy sauce and seasonings",
				"Cook for 2-3 more minutes",
				"Serve hot with rice",
			},
			DietaryTags: []string{"Asian", "Healthy", "Quick"},
		},
		{
			ID:              SampleChocChipID,
			Name:            "Classic Chocolate Chip Cookies",
			Description:     "Soft and chewy chocolate chip cookies with crispy edges",
			ImageURL:        "recipes/cookies.jpg",
			PrepTime:        20,
			CookTime:        12,
			Servings:        24,
			Cuisine:         "American",
			Category:        "Dessert",
			DifficultyLevel: domain.DifficultyEasy,
			Ingredients: []string{
				"2 1/4 cups all-purpose flour",
				"1 cup butter, softened",
				"3/4 cup sugar",
				"3/4 cup brown sugar",
				"2 large eggs",
				"2 cups chocolate chips",
				"1 tsp vanilla extract",
				"1 tsp baking soda",
				"1/2 tsp salt",
			},
			Instructions: []string{
				"Preheat oven to 375°F (190°C)",
				"Cream together butter and sugars",
				"Beat in eggs and vanilla",
				"Mix in flour, baking soda, and salt",
				"Stir in chocolate chips",
				"Drop rounded tablespoons onto baking sheets",
				"Bake for 10-12 minutes until golden",
				"Cool on wire racks",
			},
			DietaryTags: []string{"Dessert", "Baking"},
		},
	}
}
