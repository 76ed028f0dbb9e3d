package store

import (
	"recipe-catalog/internal/core/pipeline"
	"recipe-catalog/internal/core/recipe"
)

// SampleRecipes 種子資料，供 seed 指令寫入空的資料庫
func SampleRecipes() []recipe.Recipe {
	return []recipe.Recipe{
		{
			Title:       "Green Detox Smoothie",
			Description: "A refreshing blend of spinach, cucumber, and apple for a healthy start to your day.",
			Category:    "Smoothie",
			DietaryTags: []string{"vegan", "gluten-free", "low-calorie", "paleo"},
			PrepTime:    5,
			CookTime:    0,
			TotalTime:   5,
			Servings:    2,
			Difficulty:  recipe.DifficultyEasy,
			Calories:    120,
			Protein:     3,
			Carbs:       28,
			Fat:         1,
			Fiber:       5,
			Ingredients: []pipeline.IngredientLine{
				{Quantity: "2", Unit: "cups", Item: "Fresh spinach"},
				{Quantity: "1", Unit: "medium", Item: "Cucumber"},
				{Quantity: "1", Unit: "medium", Item: "Green apple"},
				{Quantity: "2", Unit: "tbsp", Item: "Lemon juice"},
				{Quantity: "1", Unit: "cup", Item: "Water"},
				{Quantity: "1", Unit: "cup", Item: "Ice cubes"},
			},
			Instructions: []string{
				"Wash all fresh produce thoroughly.",
				"Chop cucumber and apple into chunks (leave skin on for extra nutrients).",
				"Add spinach, cucumber, apple, and lemon juice to blender.",
				"Pour in water and add ice cubes.",
				"Blend on high speed for 60-90 seconds until smooth.",
				"Taste and adjust - add more lemon for tang or apple for sweetness.",
				"Serve immediately for best nutrient retention.",
			},
			HealthBenefits: []string{
				"High in vitamin K and iron from spinach",
				"Cucumber provides hydration and anti-inflammatory properties",
				"Apple adds natural sweetness and soluble fiber",
				"Lemon boosts vitamin C and aids digestion",
			},
			CookingTips: []string{
				"Use frozen spinach to make it colder without watering it down",
				"Add a handful of fresh mint for extra freshness",
				"For a creamier texture, add half an avocado",
			},
			Substitutions: []recipe.Substitution{
				{Original: "Spinach", Replacement: "Kale or Swiss chard", Reason: "Similar nutritional profile"},
				{Original: "Cucumber", Replacement: "Celery", Reason: "Equally hydrating with a different flavor"},
				{Original: "Water", Replacement: "Coconut water", Reason: "Adds electrolytes and subtle sweetness"},
			},
			SearchKeywords:  []string{"green", "detox", "healthy", "spinach", "cucumber", "morning", "cleanse"},
			MainIngredients: []string{"spinach", "cucumber", "apple"},
			Source:          recipe.SourceCurated,
		},
		{
			Title:       "Berry Blast Protein Smoothie",
			Description: "Packed with antioxidants and protein for post-workout recovery.",
			Category:    "Smoothie",
			DietaryTags: []string{"vegetarian", "gluten-free", "high-protein"},
			PrepTime:    5,
			CookTime:    0,
			TotalTime:   5,
			Servings:    1,
			Difficulty:  recipe.DifficultyEasy,
			Calories:    280,
			Protein:     25,
			Carbs:       35,
			Fat:         6,
			Fiber:       8,
			Ingredients: []pipeline.IngredientLine{
				{Quantity: "1.5", Unit: "cups", Item: "Mixed berries (frozen)"},
				{Quantity: "1", Unit: "medium", Item: "Banana"},
				{Quantity: "0.5", Unit: "cup", Item: "Greek yogurt"},
				{Quantity: "1", Unit: "", Item: "scoop protein powder (vanilla)"},
				{Quantity: "1", Unit: "cup", Item: "Almond milk"},
				{Quantity: "1", Unit: "tbsp", Item: "Honey"},
				{Quantity: "1", Unit: "tbsp", Item: "Chia seeds"},
			},
			Instructions: []string{
				"Add almond milk to blender first for easier blending.",
				"Add Greek yogurt and protein powder.",
				"Top with frozen berries and banana.",
				"Sprinkle chia seeds and drizzle honey.",
				"Blend on high for 45-60 seconds until creamy.",
				"If too thick, add more almond milk. If too thin, add more frozen berries.",
				"Pour into glass and enjoy immediately.",
			},
			HealthBenefits: []string{
				"High protein content supports muscle recovery",
				"Berries provide powerful antioxidants",
				"Chia seeds offer omega-3 fatty acids",
				"Greek yogurt adds probiotics for gut health",
			},
			CookingTips: []string{
				"Freeze banana chunks ahead for a creamier texture",
				"Use frozen berries to eliminate need for ice",
				"Prep ingredients in mason jars for grab-and-go smoothies",
			},
			Substitutions: []recipe.Substitution{
				{Original: "Greek yogurt", Replacement: "Silken tofu or coconut yogurt", Reason: "Vegan alternative with similar texture"},
				{Original: "Almond milk", Replacement: "Oat milk or soy milk", Reason: "Different flavor profiles"},
				{Original: "Honey", Replacement: "Maple syrup or dates", Reason: "For vegan option"},
			},
			SearchKeywords:  []string{"berry", "protein", "post-workout", "muscle", "recovery", "breakfast"},
			MainIngredients: []string{"berries", "banana", "protein powder"},
			Source:          recipe.SourceCurated,
		},
		{
			Title:       "Tropical Mango Sunrise Juice",
			Description: "A vibrant immune-boosting juice with tropical flavors.",
			Category:    "Juice",
			DietaryTags: []string{"vegan", "gluten-free", "paleo", "raw"},
			PrepTime:    10,
			CookTime:    0,
			TotalTime:   10,
			Servings:    2,
			Difficulty:  recipe.DifficultyEasy,
			Calories:    180,
			Protein:     2,
			Carbs:       44,
			Fat:         0.5,
			Fiber:       4,
			Ingredients: []pipeline.IngredientLine{
				{Quantity: "2", Unit: "medium", Item: "Ripe mango"},
				{Quantity: "3", Unit: "medium", Item: "Fresh orange"},
				{Quantity: "2", Unit: "large", Item: "Carrot"},
				{Quantity: "1", Unit: "inch", Item: "Fresh ginger"},
				{Quantity: "1/2", Unit: "cup", Item: "Coconut water"},
			},
			Instructions: []string{
				"Peel mango and cut flesh away from the pit.",
				"Peel oranges and separate into segments.",
				"Scrub carrots and chop into chunks.",
				"Run mango, orange, carrot, and ginger through a juicer.",
				"Stir in coconut water and serve over ice.",
			},
			HealthBenefits: []string{
				"Vitamin C from oranges supports immune function",
				"Beta-carotene from carrots promotes eye health",
				"Ginger aids digestion and reduces inflammation",
			},
			CookingTips: []string{
				"Chill all produce beforehand for a colder juice",
				"Strain through a fine sieve for a smoother texture",
			},
			Substitutions: []recipe.Substitution{
				{Original: "Mango", Replacement: "Pineapple", Reason: "Similar tropical sweetness"},
				{Original: "Coconut water", Replacement: "Plain water", Reason: "Lighter flavor"},
			},
			SearchKeywords:  []string{"tropical", "mango", "juice", "immune", "vitamin c", "sunrise"},
			MainIngredients: []string{"mango", "orange", "carrot"},
			Source:          recipe.SourceCurated,
		},
	}
}
