package recipes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealtrack/internal/models"
)

func testClient(key string) *Client {
	c := NewClient()
	c.SetKeyFunc(func(models.Source) (string, error) {
		if key == "" {
			return "", errors.New("not found")
		}
		return key, nil
	})
	return c
}

func TestSearchRequiresAPIKey(t *testing.T) {
	c := testClient("")

	_, err := c.Search(context.Background(), "pasta", models.SourceSpoonacular)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Source != models.SourceSpoonacular {
		t.Errorf("expected source in error, got %s", cfgErr.Source)
	}
}

func TestSearchUnknownSource(t *testing.T) {
	c := testClient("key")
	if _, err := c.Search(context.Background(), "pasta", models.Source("mystery")); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
	if _, err := c.Details(context.Background(), "1", models.Source("mystery")); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestSpoonacularSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes/complexSearch" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" {
			t.Errorf("expected apiKey param, got %q", q.Get("apiKey"))
		}
		if q.Get("query") != "pasta" {
			t.Errorf("expected query param, got %q", q.Get("query"))
		}
		if q.Get("addRecipeNutrition") != "true" {
			t.Errorf("expected addRecipeNutrition=true")
		}
		if q.Get("number") != "10" {
			t.Errorf("expected number=10, got %q", q.Get("number"))
		}
		fmt.Fprint(w, `{
			"results": [{
				"id": 716429,
				"title": "Pasta with Garlic",
				"image": "https://img.example/716429.jpg",
				"dishTypes": ["lunch", "dinner"],
				"nutrition": {"nutrients": [
					{"name": "Calories", "amount": 584.5, "unit": "kcal"},
					{"name": "Protein", "amount": 19, "unit": "g"},
					{"name": "Carbohydrates", "amount": 84, "unit": "g"},
					{"name": "Fat", "amount": 20, "unit": "g"},
					{"name": "Sodium", "amount": 1000, "unit": "mg"}
				]}
			}]
		}`)
	}))
	defer srv.Close()

	c := testClient("test-key")
	c.SetBaseURL(models.SourceSpoonacular, srv.URL)

	meals, err := c.Search(context.Background(), "pasta", models.SourceSpoonacular)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 result, got %d", len(meals))
	}

	meal := meals[0]
	if meal.ID != "716429" {
		t.Errorf("expected ID 716429, got %q", meal.ID)
	}
	if meal.Source != models.SourceSpoonacular {
		t.Errorf("expected spoonacular source, got %s", meal.Source)
	}
	if meal.Name != "Pasta with Garlic" {
		t.Errorf("expected title, got %q", meal.Name)
	}
	want := models.NutritionTotals{Calories: 584.5, Protein: 19, Carbs: 84, Fat: 20}
	if meal.Nutrition != want {
		t.Errorf("expected nutrition %+v, got %+v", want, meal.Nutrition)
	}
	if len(meal.Tags) != 2 {
		t.Errorf("expected dish types carried over, got %v", meal.Tags)
	}
}

func TestSpoonacularDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/716429/information":
			fmt.Fprint(w, `{
				"id": 716429,
				"title": "Pasta with Garlic",
				"image": "https://img.example/716429.jpg",
				"instructions": "Boil pasta. Add garlic.",
				"sourceUrl": "https://food.example/pasta",
				"extendedIngredients": [
					{"original": "8 oz spaghetti"},
					{"original": "3 cloves garlic"}
				]
			}`)
		case "/recipes/716429/nutritionWidget.json":
			fmt.Fprint(w, `{"calories": "584", "carbs": "84g", "fat": "20g", "protein": "19g"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := testClient("test-key")
	c.SetBaseURL(models.SourceSpoonacular, srv.URL)

	detail, err := c.Details(context.Background(), "716429", models.SourceSpoonacular)
	if err != nil {
		t.Fatalf("details failed: %v", err)
	}
	if detail.Name != "Pasta with Garlic" {
		t.Errorf("expected title, got %q", detail.Name)
	}
	if detail.Instructions != "Boil pasta. Add garlic." {
		t.Errorf("expected instructions, got %q", detail.Instructions)
	}
	if detail.SourceURL != "https://food.example/pasta" {
		t.Errorf("expected source URL, got %q", detail.SourceURL)
	}
	if len(detail.Ingredients) != 2 || detail.Ingredients[0] != "8 oz spaghetti" {
		t.Errorf("expected ingredients, got %v", detail.Ingredients)
	}
	want := models.NutritionTotals{Calories: 584, Protein: 19, Carbs: 84, Fat: 20}
	if detail.Nutrition != want {
		t.Errorf("expected nutrition %+v, got %+v", want, detail.Nutrition)
	}
}

func TestCalorieNinjasSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/nutrition" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "ninja-key" {
			t.Errorf("expected X-Api-Key header, got %q", r.Header.Get("X-Api-Key"))
		}
		if r.URL.Query().Get("query") != "1 cup rice" {
			t.Errorf("expected query param, got %q", r.URL.Query().Get("query"))
		}
		fmt.Fprint(w, `{"items": [{
			"name": "rice",
			"calories": 205.4,
			"protein_g": 4.2,
			"carbohydrates_total_g": 44.6,
			"fat_total_g": 0.4,
			"serving_size_g": 158
		}]}`)
	}))
	defer srv.Close()

	c := testClient("ninja-key")
	c.SetBaseURL(models.SourceCalorieNinjas, srv.URL)

	meals, err := c.Search(context.Background(), "1 cup rice", models.SourceCalorieNinjas)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 result, got %d", len(meals))
	}

	meal := meals[0]
	if meal.ID != "rice" || meal.Name != "rice" {
		t.Errorf("expected name to double as ID, got ID %q name %q", meal.ID, meal.Name)
	}
	want := models.NutritionTotals{Calories: 205.4, Protein: 4.2, Carbs: 44.6, Fat: 0.4}
	if meal.Nutrition != want {
		t.Errorf("expected nutrition %+v, got %+v", want, meal.Nutrition)
	}
}

func TestCalorieNinjasDetailsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	}))
	defer srv.Close()

	c := testClient("ninja-key")
	c.SetBaseURL(models.SourceCalorieNinjas, srv.URL)

	_, err := c.Details(context.Background(), "unobtainium", models.SourceCalorieNinjas)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError for empty result, got %v", err)
	}
}

func TestUpstreamErrorOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := testClient("test-key")
	c.SetBaseURL(models.SourceSpoonacular, srv.URL)

	_, err := c.Search(context.Background(), "pasta", models.SourceSpoonacular)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusPaymentRequired {
		t.Errorf("expected status 402, got %d", upErr.Status)
	}
}

func TestUpstreamErrorOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": oops`)
	}))
	defer srv.Close()

	c := testClient("test-key")
	c.SetBaseURL(models.SourceSpoonacular, srv.URL)

	_, err := c.Search(context.Background(), "pasta", models.SourceSpoonacular)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"49g", 49},
		{"316 kcal", 316},
		{"23.5g", 23.5},
		{"316", 316},
		{" 12g ", 12},
		{"", 0},
		{"n/a", 0},
	} {
		if got := parseAmount(tc.in); got != tc.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
