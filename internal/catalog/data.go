package catalog

import "nutriplan/internal/domain"

var weightLossPlan = domain.DietPlan{
	Name:          "Weight Loss Diet",
	Description:   "A balanced diet focused on calorie deficit and healthy eating habits",
	DailyCalories: 1500,
	Meals: domain.Meals{
		Breakfast: []domain.Meal{
			{Name: "Oatmeal with berries", Calories: 250, Protein: 8, Carbs: 45, Fat: 5},
			{Name: "Greek yogurt with nuts", Calories: 200, Protein: 15, Carbs: 20, Fat: 8},
			{Name: "Egg white omelette", Calories: 180, Protein: 20, Carbs: 5, Fat: 8},
		},
		Lunch: []domain.Meal{
			{Name: "Grilled chicken salad", Calories: 300, Protein: 25, Carbs: 15, Fat: 12},
			{Name: "Quinoa bowl with vegetables", Calories: 280, Protein: 12, Carbs: 45, Fat: 6},
			{Name: "Tuna sandwich on whole grain", Calories: 320, Protein: 22, Carbs: 35, Fat: 10},
		},
		Dinner: []domain.Meal{
			{Name: "Salmon with steamed vegetables", Calories: 350, Protein: 30, Carbs: 20, Fat: 15},
			{Name: "Lean beef stir-fry", Calories: 320, Protein: 28, Carbs: 25, Fat: 12},
			{Name: "Vegetarian lentil curry", Calories: 290, Protein: 15, Carbs: 50, Fat: 8},
		},
		Snacks: []domain.Meal{
			{Name: "Apple with almond butter", Calories: 150, Protein: 4, Carbs: 25, Fat: 8},
			{Name: "Carrot sticks with hummus", Calories: 120, Protein: 3, Carbs: 18, Fat: 6},
			{Name: "Greek yogurt", Calories: 100, Protein: 12, Carbs: 8, Fat: 2},
		},
	},
}

var muscleGainPlan = domain.DietPlan{
	Name:          "Muscle Gain Diet",
	Description:   "High protein diet designed for muscle building and strength training",
	DailyCalories: 2500,
	Meals: domain.Meals{
		Breakfast: []domain.Meal{
			{Name: "Protein smoothie with banana", Calories: 400, Protein: 25, Carbs: 60, Fat: 8},
			{Name: "Eggs with whole grain toast", Calories: 350, Protein: 20, Carbs: 35, Fat: 15},
			{Name: "Protein pancakes", Calories: 380, Protein: 22, Carbs: 45, Fat: 12},
		},
		Lunch: []domain.Meal{
			{Name: "Chicken rice bowl", Calories: 500, Protein: 35, Carbs: 65, Fat: 15},
			{Name: "Turkey sandwich with avocado", Calories: 450, Protein: 28, Carbs: 40, Fat: 20},
			{Name: "Protein pasta with meatballs", Calories: 480, Protein: 32, Carbs: 55, Fat: 18},
		},
		Dinner: []domain.Meal{
			{Name: "Steak with sweet potato", Calories: 550, Protein: 40, Carbs: 45, Fat: 25},
			{Name: "Salmon with quinoa", Calories: 520, Protein: 35, Carbs: 50, Fat: 22},
			{Name: "Chicken stir-fry with rice", Calories: 480, Protein: 30, Carbs: 60, Fat: 18},
		},
		Snacks: []domain.Meal{
			{Name: "Protein bar", Calories: 200, Protein: 20, Carbs: 25, Fat: 8},
			{Name: "Nuts and dried fruits", Calories: 180, Protein: 6, Carbs: 20, Fat: 12},
			{Name: "Greek yogurt with granola", Calories: 220, Protein: 15, Carbs: 30, Fat: 8},
		},
	},
}

var maintenancePlan = domain.DietPlan{
	Name:          "Maintenance Diet",
	Description:   "Balanced diet for maintaining current weight and overall health",
	DailyCalories: 2000,
	Meals: domain.Meals{
		Breakfast: []domain.Meal{
			{Name: "Whole grain cereal with milk", Calories: 300, Protein: 12, Carbs: 50, Fat: 8},
			{Name: "Avocado toast", Calories: 280, Protein: 10, Carbs: 35, Fat: 15},
			{Name: "Smoothie bowl", Calories: 320, Protein: 15, Carbs: 45, Fat: 12},
		},
		Lunch: []domain.Meal{
			{Name: "Mediterranean salad", Calories: 350, Protein: 18, Carbs: 30, Fat: 20},
			{Name: "Grilled cheese with soup", Calories: 380, Protein: 15, Carbs: 40, Fat: 18},
			{Name: "Pasta primavera", Calories: 360, Protein: 12, Carbs: 55, Fat: 12},
		},
		Dinner: []domain.Meal{
			{Name: "Baked chicken with vegetables", Calories: 400, Protein: 30, Carbs: 35, Fat: 18},
			{Name: "Fish tacos", Calories: 380, Protein: 25, Carbs: 40, Fat: 16},
			{Name: "Vegetarian lasagna", Calories: 420, Protein: 18, Carbs: 50, Fat: 20},
		},
		Snacks: []domain.Meal{
			{Name: "Mixed nuts", Calories: 160, Protein: 6, Carbs: 8, Fat: 15},
			{Name: "Fruit with yogurt", Calories: 140, Protein: 8, Carbs: 25, Fat: 4},
			{Name: "Popcorn", Calories: 120, Protein: 3, Carbs: 20, Fat: 5},
		},
	},
}

var foods = map[domain.FoodCategory][]domain.FoodItem{
	domain.Proteins: {
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
		{Name: "Salmon", Calories: 208, Protein: 25, Carbs: 0, Fat: 12},
		{Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		{Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
		{Name: "Tuna", Calories: 144, Protein: 30, Carbs: 0, Fat: 1},
		{Name: "Lean Beef", Calories: 250, Protein: 26, Carbs: 0, Fat: 15},
	},
	domain.Carbs: {
		{Name: "Brown Rice", Calories: 216, Protein: 4.5, Carbs: 45, Fat: 1.8},
		{Name: "Quinoa", Calories: 222, Protein: 8, Carbs: 39, Fat: 3.6},
		{Name: "Sweet Potato", Calories: 103, Protein: 2, Carbs: 24, Fat: 0.2},
		{Name: "Oats", Calories: 307, Protein: 13, Carbs: 55, Fat: 5.3},
		{Name: "Whole Grain Bread", Calories: 247, Protein: 13, Carbs: 41, Fat: 4.2},
		{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	},
	domain.Fats: {
		{Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fat: 15},
		{Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14},
		{Name: "Olive Oil", Calories: 119, Protein: 0, Carbs: 0, Fat: 14},
		{Name: "Peanut Butter", Calories: 188, Protein: 8, Carbs: 6, Fat: 16},
		{Name: "Chia Seeds", Calories: 138, Protein: 4.7, Carbs: 12, Fat: 8.7},
		{Name: "Coconut Oil", Calories: 121, Protein: 0, Carbs: 0, Fat: 14},
	},
}
