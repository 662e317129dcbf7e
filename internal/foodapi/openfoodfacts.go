package foodapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nutritrack/nutritrack-backend/internal/config"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

// OFFClient looks up barcodes against Open Food Facts.
type OFFClient struct {
	baseURL string
	client  *http.Client
}

func NewOFFClient(cfg *config.Config) *OFFClient {
	return &OFFClient{
		baseURL: cfg.OFFAPIURL,
		client:  &http.Client{Timeout: cfg.FoodTimeout},
	}
}

type offProduct struct {
	ProductName     string      `json:"product_name"`
	GenericName     string      `json:"generic_name"`
	// Number or numeric string depending on the product record.
	ServingQuantity interface{} `json:"serving_quantity"`
	ServingSize     string      `json:"serving_size"`
	// Mixed-type map: numeric values sit next to *_unit strings.
	Nutriments map[string]interface{} `json:"nutriments"`
}

type offResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

// Lookup returns the product behind a barcode as a per-100g estimate, or
// nil when the barcode is unknown.
func (o *OFFClient) Lookup(barcode string) (*nutrition.Estimate, error) {
	resp, err := o.client.Get(fmt.Sprintf("%s/product/%s.json", o.baseURL, barcode))
	if err != nil {
		return nil, fmt.Errorf("open food facts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts returned status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode open food facts response: %w", err)
	}
	if parsed.Status != 1 || parsed.Product == nil {
		return nil, nil
	}

	product := parsed.Product
	name := product.ProductName
	if name == "" {
		name = product.GenericName
	}
	if name == "" {
		name = "Unknown Product"
	}
	serving := toFloat(product.ServingQuantity)
	if serving <= 0 {
		serving = 100
	}

	return &nutrition.Estimate{
		FoodName:             name,
		Calories:             product.nutriment("energy-kcal_100g", "energy-kcal"),
		Protein:              product.nutriment("proteins_100g", "proteins"),
		Carbs:                product.nutriment("carbohydrates_100g", "carbohydrates"),
		Fat:                  product.nutriment("fat_100g", "fat"),
		Fiber:                product.nutriment("fiber_100g", "fiber"),
		IsEstimate:           false,
		ServingSizeGrams:     serving,
		HouseholdServingText: product.ServingSize,
		NutrientsPer100g:     true,
	}, nil
}

// nutriment returns the first present key, preferring per-100g values.
func (p *offProduct) nutriment(keys ...string) float64 {
	for _, k := range keys {
		if v := toFloat(p.Nutriments[k]); v != 0 {
			return v
		}
	}
	return 0
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}
