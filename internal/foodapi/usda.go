package foodapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nutritrack/nutritrack-backend/internal/config"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

// USDAClient searches USDA FoodData Central.
type USDAClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAClient(cfg *config.Config) *USDAClient {
	return &USDAClient{
		apiKey:  cfg.USDAAPIKey,
		baseURL: cfg.USDAAPIURL,
		client:  &http.Client{Timeout: cfg.FoodTimeout},
	}
}

type usdaFood struct {
	FdcID         int    `json:"fdcId"`
	Description   string `json:"description"`
	FoodNutrients []struct {
		NutrientName string  `json:"nutrientName"`
		Value        float64 `json:"value"`
	} `json:"foodNutrients"`
	ServingSize              float64 `json:"servingSize"`
	ServingSizeUnit          string  `json:"servingSizeUnit"`
	HouseholdServingFullText string  `json:"householdServingFullText"`
}

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

// Search returns up to 10 normalized results for a query. An unset API key
// yields an empty result set, not an error, so the AI path still works.
func (u *USDAClient) Search(query string) ([]nutrition.FoodSearchResult, error) {
	if u.apiKey == "" {
		slog.Warn("USDA_API_KEY not set, skipping USDA search")
		return []nutrition.FoodSearchResult{}, nil
	}

	reqURL, err := url.Parse(u.baseURL + "/foods/search")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	params := reqURL.Query()
	params.Add("query", query)
	params.Add("pageSize", "10")
	params.Add("api_key", u.apiKey)
	reqURL.RawQuery = params.Encode()

	resp, err := u.client.Get(reqURL.String())
	if err != nil {
		return nil, fmt.Errorf("usda request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("usda returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed usdaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode usda response: %w", err)
	}

	results := make([]nutrition.FoodSearchResult, len(parsed.Foods))
	for i, food := range parsed.Foods {
		serving := food.ServingSize
		if serving <= 0 {
			serving = 100
		}
		results[i] = nutrition.FoodSearchResult{
			FoodName:             titleCase(food.Description),
			Calories:             food.nutrient("Energy"),
			Protein:              food.nutrient("Protein"),
			Carbs:                food.nutrient("Carbohydrate, by difference"),
			Fat:                  food.nutrient("Total lipid (fat)"),
			Fiber:                food.nutrient("Fiber, total dietary"),
			Source:               "usda",
			FdcID:                food.FdcID,
			ServingSizeGrams:     serving,
			HouseholdServingText: food.HouseholdServingFullText,
			NutrientsPer100g:     true,
		}
	}
	return results, nil
}

// nutrient finds a value by case-insensitive substring match on the
// nutrient name, 0 when absent.
func (f usdaFood) nutrient(name string) float64 {
	lower := strings.ToLower(name)
	for _, n := range f.FoodNutrients {
		if strings.Contains(strings.ToLower(n.NutrientName), lower) {
			return n.Value
		}
	}
	return 0
}

// titleCase lowercases then capitalizes each word; USDA descriptions come
// back in ALL CAPS.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
