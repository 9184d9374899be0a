package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// remoteSearchTimeout bounds the remote nutrition database call. The API has
// no SLA; on timeout the search degrades to local and cached results.
const remoteSearchTimeout = 3 * time.Second

// RemoteProduct is one search hit from the remote nutrition database, with
// nutrient fields per 100 g keyed by the product code.
type RemoteProduct struct {
	Code           string
	Name           string
	Brand          string
	ImageURL       string
	ServingSize    string
	ServingWeightG float64

	// per 100 g
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64 // grams
}

// OpenFoodFactsService queries the Open Food Facts search endpoint.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService(baseURL string) *OpenFoodFactsService {
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &OpenFoodFactsService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: remoteSearchTimeout},
	}
}

type offSearchResponse struct {
	Products []struct {
		Code            string  `json:"code"`
		ProductName     string  `json:"product_name"`
		Brands          string  `json:"brands"`
		ImageURL        string  `json:"image_url"`
		ServingSize     string  `json:"serving_size"`
		ServingQuantity float64 `json:"serving_quantity"`
		Nutriments      struct {
			EnergyKcal100g    float64 `json:"energy-kcal_100g"`
			Proteins100g      float64 `json:"proteins_100g"`
			Carbohydrates100g float64 `json:"carbohydrates_100g"`
			Fat100g           float64 `json:"fat_100g"`
			Fiber100g         float64 `json:"fiber_100g"`
			Sugars100g        float64 `json:"sugars_100g"`
			Sodium100g        float64 `json:"sodium_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// SearchProducts runs a free-text product search. The caller's context sets
// the deadline; errors are reported, never swallowed here.
func (s *OpenFoodFactsService) SearchProducts(ctx context.Context, query string, limit int) ([]RemoteProduct, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		s.baseURL, url.QueryEscape(query), limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call product search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse product search JSON: %w", err)
	}

	results := make([]RemoteProduct, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.Code == "" || p.ProductName == "" {
			continue
		}
		results = append(results, RemoteProduct{
			Code:           p.Code,
			Name:           p.ProductName,
			Brand:          p.Brands,
			ImageURL:       p.ImageURL,
			ServingSize:    p.ServingSize,
			ServingWeightG: p.ServingQuantity,
			Calories:       p.Nutriments.EnergyKcal100g,
			Protein:        p.Nutriments.Proteins100g,
			Carbs:          p.Nutriments.Carbohydrates100g,
			Fat:            p.Nutriments.Fat100g,
			Fiber:          p.Nutriments.Fiber100g,
			Sugar:          p.Nutriments.Sugars100g,
			Sodium:         p.Nutriments.Sodium100g,
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}
