package recipes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"mealtrack/internal/models"
)

const calorieNinjasBaseURL = "https://api.calorieninjas.com"

type calorieNinjasResponse struct {
	Items []calorieNinjasItem `json:"items"`
}

type calorieNinjasItem struct {
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsTotalG   float64 `json:"carbohydrates_total_g"`
	FatTotalG     float64 `json:"fat_total_g"`
	ServingSizeG  float64 `json:"serving_size_g"`
	SugarG        float64 `json:"sugar_g"`
	FiberG        float64 `json:"fiber_g"`
	SodiumMG      float64 `json:"sodium_mg"`
	PotassiumMG   float64 `json:"potassium_mg"`
	CholesterolMG float64 `json:"cholesterol_mg"`
}

// CalorieNinjas has no ID-addressed catalog: free-text queries return plain
// nutrition facts, so the item name doubles as its identifier.
func (c *Client) searchCalorieNinjas(ctx context.Context, query, key string) ([]models.NormalizedMeal, error) {
	endpoint := fmt.Sprintf("%s/v1/nutrition?query=%s", c.baseURLs[models.SourceCalorieNinjas], url.QueryEscape(query))

	header := http.Header{}
	header.Set("X-Api-Key", key)

	var resp calorieNinjasResponse
	if err := c.getJSON(ctx, models.SourceCalorieNinjas, endpoint, header, &resp); err != nil {
		return nil, err
	}

	meals := make([]models.NormalizedMeal, 0, len(resp.Items))
	for _, item := range resp.Items {
		meals = append(meals, item.normalize())
	}
	return meals, nil
}

func (c *Client) calorieNinjasDetails(ctx context.Context, id, key string) (models.MealDetail, error) {
	meals, err := c.searchCalorieNinjas(ctx, id, key)
	if err != nil {
		return models.MealDetail{}, err
	}
	if len(meals) == 0 {
		return models.MealDetail{}, &UpstreamError{
			Source: models.SourceCalorieNinjas,
			Err:    fmt.Errorf("no nutrition data for %q", id),
		}
	}
	return models.MealDetail{NormalizedMeal: meals[0]}, nil
}

func (item calorieNinjasItem) normalize() models.NormalizedMeal {
	return models.NormalizedMeal{
		ID:     item.Name,
		Source: models.SourceCalorieNinjas,
		Name:   item.Name,
		Nutrition: models.NutritionTotals{
			Calories: item.Calories,
			Protein:  item.ProteinG,
			Carbs:    item.CarbsTotalG,
			Fat:      item.FatTotalG,
		},
	}
}
