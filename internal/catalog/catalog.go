// Package catalog содержит статический справочник блюд: таблицы кухонь с
// кандидатами по приёмам пищи и цветовыми тегами, а также палитру
// «радужных» продуктов по цветам. Чистые данные без поведения.
package catalog

import "sort"

// CuisineTable — кандидаты блюд одной кухни по приёмам пищи и её базовый
// набор цветовых тегов.
type CuisineTable struct {
	Breakfast []string
	Lunch     []string
	Dinner    []string
	Colors    []string
}

// DefaultCuisine используется, когда предпочтение не задано или не распознано.
const DefaultCuisine = "Mediterranean"

var cuisineMeals = map[string]CuisineTable{
	"African American": {
		Breakfast: []string{"Sweet potato hash with collard greens", "Grits bowl with scrambled eggs and greens"},
		Lunch:     []string{"Black-eyed pea salad with cornbread", "Smoked turkey and kale soup"},
		Dinner:    []string{"Baked chicken with roasted okra and brown rice", "Turkey meatballs with greens and sweet potato"},
		Colors:    []string{"orange", "green", "white", "red"},
	},
	"Caribbean": {
		Breakfast: []string{"Ackee and callaloo scramble", "Plantain and egg bowl"},
		Lunch:     []string{"Jerk chicken salad with mango", "Rice and peas with steamed vegetables"},
		Dinner:    []string{"Grilled fish with festival and coleslaw", "Curry chickpea stew with rice"},
		Colors:    []string{"yellow", "green", "red", "orange"},
	},
	"Mexican": {
		Breakfast: []string{"Huevos rancheros with black beans", "Breakfast burrito with veggies"},
		Lunch:     []string{"Chicken fajita bowl with peppers", "Black bean and corn salad"},
		Dinner:    []string{"Fish tacos with cabbage slaw", "Chicken enchiladas with verde sauce"},
		Colors:    []string{"red", "green", "yellow", "orange"},
	},
	"South Asian": {
		Breakfast: []string{"Veggie upma with chutney", "Moong dal cheela with yogurt"},
		Lunch:     []string{"Chana masala with brown rice", "Palak paneer with roti"},
		Dinner:    []string{"Tandoori chicken with raita and salad", "Lentil dal with roasted vegetables"},
		Colors:    []string{"orange", "green", "yellow", "red"},
	},
	"East Asian": {
		Breakfast: []string{"Congee with vegetables and egg", "Miso soup with tofu and greens"},
		Lunch:     []string{"Teriyaki salmon with bok choy", "Vegetable stir-fry with brown rice"},
		Dinner:    []string{"Grilled fish with seaweed salad", "Chicken and broccoli with quinoa"},
		Colors:    []string{"green", "orange", "white", "red"},
	},
	"Mediterranean": {
		Breakfast: []string{"Greek yogurt with berries and nuts", "Shakshuka with whole grain bread"},
		Lunch:     []string{"Greek salad with grilled chicken", "Lentil soup with vegetables"},
		Dinner:    []string{"Grilled fish with roasted vegetables", "Chicken souvlaki with tabbouleh"},
		Colors:    []string{"red", "green", "purple", "orange"},
	},
	"West African": {
		Breakfast: []string{"Millet porridge with fruit", "Bean cakes with pepper sauce"},
		Lunch:     []string{"Jollof rice with grilled chicken", "Groundnut soup with vegetables"},
		Dinner:    []string{"Grilled tilapia with plantain and greens", "Black-eyed pea stew with rice"},
		Colors:    []string{"red", "orange", "green", "yellow"},
	},
	"Italian": {
		Breakfast: []string{"Frittata with vegetables", "Whole grain toast with tomatoes"},
		Lunch:     []string{"Minestrone soup with beans", "Caprese salad with grilled chicken"},
		Dinner:    []string{"Grilled fish with roasted peppers", "Chicken cacciatore with vegetables"},
		Colors:    []string{"red", "green", "orange", "white"},
	},
}

// palette перечисляет шесть цветовых групп в порядке обхода при добивке
// недостающих цветов.
var palette = []string{"red", "orange", "yellow", "green", "blue-purple", "white"}

var colorFoods = map[string][]string{
	"red":         {"tomatoes", "strawberries", "red bell peppers", "beets", "watermelon"},
	"orange":      {"carrots", "sweet potatoes", "oranges", "butternut squash", "papaya"},
	"yellow":      {"bananas", "corn", "yellow squash", "pineapple", "lemons"},
	"green":       {"spinach", "broccoli", "avocados", "kale", "green beans", "collard greens"},
	"blue-purple": {"blueberries", "eggplant", "purple cabbage", "blackberries", "plums"},
	"white":       {"cauliflower", "onions", "garlic", "mushrooms", "turnips"},
}

// Cuisine возвращает таблицу кухни по имени.
func Cuisine(name string) (CuisineTable, bool) {
	table, ok := cuisineMeals[name]
	return table, ok
}

// Cuisines возвращает отсортированный список известных кухонь.
func Cuisines() []string {
	names := make([]string, 0, len(cuisineMeals))
	for name := range cuisineMeals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette возвращает шесть цветовых групп в фиксированном порядке.
func Palette() []string {
	return palette
}

// FoodsForColor возвращает список продуктов-представителей цвета.
func FoodsForColor(color string) []string {
	return colorFoods[color]
}
