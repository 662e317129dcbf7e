package foodapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/config"
)

func usdaClientFor(server *httptest.Server, apiKey string) *USDAClient {
	return NewUSDAClient(&config.Config{
		USDAAPIKey:  apiKey,
		USDAAPIURL:  server.URL,
		FoodTimeout: 5 * time.Second,
	})
}

func offClientFor(server *httptest.Server) *OFFClient {
	return NewOFFClient(&config.Config{
		OFFAPIURL:   server.URL,
		FoodTimeout: 5 * time.Second,
	})
}

func TestUSDASearch_NormalizesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "cheddar cheese" {
			t.Errorf("query param = %q", got)
		}
		if got := r.URL.Query().Get("pageSize"); got != "10" {
			t.Errorf("pageSize param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[{
			"fdcId": 328637,
			"description": "CHEESE, CHEDDAR",
			"servingSize": 28,
			"householdServingFullText": "1 slice",
			"foodNutrients": [
				{"nutrientName": "Energy", "value": 403},
				{"nutrientName": "Protein", "value": 22.9},
				{"nutrientName": "Carbohydrate, by difference", "value": 3.1},
				{"nutrientName": "Total lipid (fat)", "value": 33.3},
				{"nutrientName": "Fiber, total dietary", "value": 0}
			]
		}]}`))
	}))
	defer server.Close()

	results, err := usdaClientFor(server, "test-key").Search("cheddar cheese")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.FoodName != "Cheese, Cheddar" {
		t.Errorf("foodName = %q, want title-cased description", r.FoodName)
	}
	if r.Calories != 403 || r.Protein != 22.9 {
		t.Errorf("nutrients = %v cal / %v protein", r.Calories, r.Protein)
	}
	if r.Source != "usda" || r.FdcID != 328637 {
		t.Errorf("source = %q, fdcId = %d", r.Source, r.FdcID)
	}
	if !r.NutrientsPer100g {
		t.Error("USDA values are per 100g")
	}
	if r.ServingSizeGrams != 28 || r.HouseholdServingText != "1 slice" {
		t.Errorf("serving = %v / %q", r.ServingSizeGrams, r.HouseholdServingText)
	}
}

func TestUSDASearch_MissingServingDefaultsTo100(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods":[{"fdcId":1,"description":"APPLES, RAW","foodNutrients":[]}]}`))
	}))
	defer server.Close()

	results, err := usdaClientFor(server, "test-key").Search("apple")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results[0].ServingSizeGrams != 100 {
		t.Errorf("servingSizeGrams = %v, want default 100", results[0].ServingSizeGrams)
	}
}

func TestUSDASearch_NoAPIKeyReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the API without a key")
	}))
	defer server.Close()

	results, err := usdaClientFor(server, "").Search("anything")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want none", len(results))
	}
}

func TestUSDASearch_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := usdaClientFor(server, "bad-key").Search("x"); err == nil {
		t.Error("expected an error for a 403 response")
	}
}

func TestOFFLookup_KnownBarcode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/product/737628064502.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":1,"product":{
			"product_name": "Rice Noodles",
			"serving_quantity": "55",
			"serving_size": "55 g",
			"nutriments": {
				"energy-kcal_100g": 385,
				"proteins_100g": 7.7,
				"carbohydrates_100g": 83.1,
				"fat_100g": 1.5,
				"fiber_100g": 1.5,
				"fat_unit": "g"
			}
		}}`))
	}))
	defer server.Close()

	est, err := offClientFor(server).Lookup("737628064502")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if est == nil {
		t.Fatal("got nil estimate for a known barcode")
	}
	if est.FoodName != "Rice Noodles" {
		t.Errorf("foodName = %q", est.FoodName)
	}
	if est.Calories != 385 || est.Carbs != 83.1 {
		t.Errorf("nutrients = %v cal / %v carbs", est.Calories, est.Carbs)
	}
	if est.ServingSizeGrams != 55 {
		t.Errorf("servingSizeGrams = %v, want string quantity coerced to 55", est.ServingSizeGrams)
	}
	if est.IsEstimate {
		t.Error("barcode lookups carry label data, not estimates")
	}
	if !est.NutrientsPer100g {
		t.Error("OFF values are per 100g")
	}
}

func TestOFFLookup_UnknownBarcodeIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0}`))
	}))
	defer server.Close()

	est, err := offClientFor(server).Lookup("000")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if est != nil {
		t.Errorf("got %+v, want nil for an unknown barcode", est)
	}
}

func TestOFFLookup_NameFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"generic_name":"Sparkling Water","nutriments":{}}}`))
	}))
	defer server.Close()

	est, err := offClientFor(server).Lookup("123")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if est.FoodName != "Sparkling Water" {
		t.Errorf("foodName = %q, want generic_name fallback", est.FoodName)
	}
	if est.ServingSizeGrams != 100 {
		t.Errorf("servingSizeGrams = %v, want default 100", est.ServingSizeGrams)
	}
}
