package recipes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"mealtrack/internal/models"
)

const (
	spoonacularBaseURL = "https://api.spoonacular.com"

	// searchResultLimit caps complexSearch results per query.
	searchResultLimit = 10
)

type spoonacularSearchResponse struct {
	Results []spoonacularRecipe `json:"results"`
}

type spoonacularRecipe struct {
	ID        int                   `json:"id"`
	Title     string                `json:"title"`
	Image     string                `json:"image"`
	DishTypes []string              `json:"dishTypes"`
	Nutrition *spoonacularNutrition `json:"nutrition"`
}

type spoonacularNutrition struct {
	Nutrients []spoonacularNutrient `json:"nutrients"`
}

type spoonacularNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type spoonacularInformation struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Image               string   `json:"image"`
	Instructions        string   `json:"instructions"`
	SourceURL           string   `json:"sourceUrl"`
	DishTypes           []string `json:"dishTypes"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

// nutritionWidget.json reports amounts as display strings with units
// attached ("316", "49g"), not numbers.
type spoonacularWidgetNutrition struct {
	Calories string `json:"calories"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Protein  string `json:"protein"`
}

func (c *Client) searchSpoonacular(ctx context.Context, query, key string) ([]models.NormalizedMeal, error) {
	params := url.Values{}
	params.Set("apiKey", key)
	params.Set("query", query)
	params.Set("addRecipeNutrition", "true")
	params.Set("number", strconv.Itoa(searchResultLimit))

	endpoint := fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURLs[models.SourceSpoonacular], params.Encode())

	var resp spoonacularSearchResponse
	if err := c.getJSON(ctx, models.SourceSpoonacular, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	meals := make([]models.NormalizedMeal, 0, len(resp.Results))
	for _, r := range resp.Results {
		meals = append(meals, r.normalize())
	}
	return meals, nil
}

func (c *Client) spoonacularDetails(ctx context.Context, id, key string) (models.MealDetail, error) {
	base := c.baseURLs[models.SourceSpoonacular]

	var info spoonacularInformation
	infoURL := fmt.Sprintf("%s/recipes/%s/information?apiKey=%s", base, url.PathEscape(id), url.QueryEscape(key))
	if err := c.getJSON(ctx, models.SourceSpoonacular, infoURL, nil, &info); err != nil {
		return models.MealDetail{}, err
	}

	var widget spoonacularWidgetNutrition
	nutritionURL := fmt.Sprintf("%s/recipes/%s/nutritionWidget.json?apiKey=%s", base, url.PathEscape(id), url.QueryEscape(key))
	if err := c.getJSON(ctx, models.SourceSpoonacular, nutritionURL, nil, &widget); err != nil {
		return models.MealDetail{}, err
	}

	ingredients := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	return models.MealDetail{
		NormalizedMeal: models.NormalizedMeal{
			ID:       strconv.Itoa(info.ID),
			Source:   models.SourceSpoonacular,
			Name:     info.Title,
			ImageURL: info.Image,
			Tags:     info.DishTypes,
			Nutrition: models.NutritionTotals{
				Calories: parseAmount(widget.Calories),
				Protein:  parseAmount(widget.Protein),
				Carbs:    parseAmount(widget.Carbs),
				Fat:      parseAmount(widget.Fat),
			},
		},
		Ingredients:  ingredients,
		Instructions: info.Instructions,
		SourceURL:    info.SourceURL,
	}, nil
}

func (r spoonacularRecipe) normalize() models.NormalizedMeal {
	meal := models.NormalizedMeal{
		ID:       strconv.Itoa(r.ID),
		Source:   models.SourceSpoonacular,
		Name:     r.Title,
		ImageURL: r.Image,
		Tags:     r.DishTypes,
	}
	if r.Nutrition != nil {
		for _, n := range r.Nutrition.Nutrients {
			switch n.Name {
			case "Calories":
				meal.Nutrition.Calories = n.Amount
			case "Protein":
				meal.Nutrition.Protein = n.Amount
			case "Carbohydrates":
				meal.Nutrition.Carbs = n.Amount
			case "Fat":
				meal.Nutrition.Fat = n.Amount
			}
		}
	}
	return meal
}

// parseAmount extracts the leading numeric value from a display amount like
// "49g" or "316 kcal". Unparseable values are zero.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == '-') {
		end++
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
