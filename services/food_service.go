package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
)

const (
	dbSearchLimit     = 10
	remoteSearchLimit = 5
	mergedResultLimit = 15
	minRemoteQueryLen = 3
)

// NormalizedFood is a source-agnostic food record expressed in per-serving
// units, ready for meal logging. Per-100g records are converted before they
// ever leave this package.
type NormalizedFood struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Name    string `json:"name"`
	Brand   string `json:"brand,omitempty"`
	Barcode string `json:"barcode,omitempty"`
	Image   string `json:"image,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sugar    float64 `json:"sugar,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`

	Serving string `json:"serving"`
}

// ProductSearcher is the remote nutrition database dependency.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string, limit int) ([]RemoteProduct, error)
}

type FoodService struct {
	db     *gorm.DB
	remote ProductSearcher
}

func NewFoodService(db *gorm.DB, remote ProductSearcher) *FoodService {
	return &FoodService{db: db, remote: remote}
}

// Search resolves a free-text query against the curated list, the foods table
// and the remote nutrition database, merged in that priority order and
// deduplicated on (name, brand). It never fails: every lookup error degrades
// the result list instead.
func (s *FoodService) Search(ctx context.Context, query string) []NormalizedFood {
	query = strings.TrimSpace(query)
	if query == "" {
		return PopularFoods()
	}

	results := searchLocal(query)
	results = append(results, s.searchDatabase(query)...)
	if len(query) >= minRemoteQueryLen {
		results = append(results, s.searchRemote(ctx, query)...)
	}

	return dedupeFoods(results, mergedResultLimit)
}

// searchLocal matches the curated list: substring on name, then any query
// word longer than two characters. Prefix matches sort first, ties by name.
func searchLocal(query string) []NormalizedFood {
	q := strings.ToLower(query)

	var prefix, rest []NormalizedFood
	seen := make(map[string]bool, len(localFoods))
	add := func(f NormalizedFood) {
		if seen[f.ID] {
			return
		}
		seen[f.ID] = true
		if strings.HasPrefix(strings.ToLower(f.Name), q) {
			prefix = append(prefix, f)
		} else {
			rest = append(rest, f)
		}
	}

	for _, f := range localFoods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			add(f)
		}
	}
	for _, w := range strings.Fields(q) {
		if len(w) <= 2 {
			continue
		}
		for _, f := range localFoods {
			if strings.Contains(strings.ToLower(f.Name), w) {
				add(f)
			}
		}
	}

	sort.Slice(prefix, func(i, j int) bool { return prefix[i].Name < prefix[j].Name })
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	return append(prefix, rest...)
}

func (s *FoodService) searchDatabase(query string) []NormalizedFood {
	pattern := "%" + strings.ToLower(query) + "%"

	var foods []models.Food
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern).
		Limit(dbSearchLimit).
		Find(&foods).Error; err != nil {
		logrus.WithError(err).WithField("query", query).Warn("food search: database lookup failed")
		return nil
	}

	out := make([]NormalizedFood, 0, len(foods))
	for i := range foods {
		out = append(out, normalizeRecord(&foods[i], models.SourceDatabase))
	}
	return out
}

func (s *FoodService) searchRemote(ctx context.Context, query string) []NormalizedFood {
	ctx, cancel := context.WithTimeout(ctx, remoteSearchTimeout)
	defer cancel()

	products, err := s.remote.SearchProducts(ctx, query, remoteSearchLimit)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("food search: remote lookup failed")
		return nil
	}

	out := make([]NormalizedFood, 0, len(products))
	for _, p := range products {
		rec, err := s.resolveRemote(p)
		if err != nil {
			logrus.WithError(err).WithField("code", p.Code).Warn("food search: cache upsert failed")
			continue
		}
		out = append(out, normalizeRecord(rec, models.SourceRemote))
	}
	return out
}

// resolveRemote reuses a fresh cache record for the product, or upserts a new
// snapshot when the record is missing or stale. Stale records are replaced in
// place, never duplicated.
func (s *FoodService) resolveRemote(p RemoteProduct) (*models.Food, error) {
	var rec models.Food
	err := s.db.
		Where("external_id = ? AND source = ?", p.Code, models.SourceRemote).
		First(&rec).Error
	switch {
	case err == nil && !rec.IsStale():
		return &rec, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	fresh := remoteToRecord(p)
	if err == nil {
		fresh.ID = rec.ID
		fresh.CreatedAt = rec.CreatedAt
	}
	if saveErr := s.db.Save(&fresh).Error; saveErr != nil {
		return nil, saveErr
	}
	return &fresh, nil
}

// remoteToRecord converts a remote per-100g product to the cache-record shape.
func remoteToRecord(p RemoteProduct) models.Food {
	weight := p.ServingWeightG
	if weight <= 0 {
		weight = 100
	}
	return models.Food{
		ExternalID:     p.Code,
		Source:         models.SourceRemote,
		Name:           p.Name,
		Brand:          p.Brand,
		Barcode:        p.Code,
		ImageURL:       p.ImageURL,
		Calories:       p.Calories,
		Protein:        p.Protein,
		Carbs:          p.Carbs,
		Fat:            p.Fat,
		Fiber:          p.Fiber,
		Sugar:          p.Sugar,
		Sodium:         p.Sodium,
		ServingSize:    p.ServingSize,
		ServingWeightG: weight,
		LastFetched:    time.Now(),
	}
}

// normalizeRecord converts a per-100g cache record to per-serving units.
// Custom records keep their source tag; everything else takes the tag of the
// lookup path that produced it.
func normalizeRecord(f *models.Food, tag string) NormalizedFood {
	weight := f.ServingWeightG
	if weight <= 0 {
		weight = 100
	}
	factor := weight / 100.0

	serving := f.ServingSize
	if serving == "" {
		serving = fmt.Sprintf("%.0fg", weight)
	}

	source := tag
	if f.Source == models.SourceCustom {
		source = models.SourceCustom
	}

	return NormalizedFood{
		ID:       fmt.Sprintf("%d", f.ID),
		Source:   source,
		Name:     f.Name,
		Brand:    f.Brand,
		Barcode:  f.Barcode,
		Image:    f.ImageURL,
		Calories: round0(f.Calories * factor),
		Protein:  round1(f.Protein * factor),
		Carbs:    round1(f.Carbs * factor),
		Fat:      round1(f.Fat * factor),
		Fiber:    round1(f.Fiber * factor),
		Sugar:    round1(f.Sugar * factor),
		Sodium:   round3(f.Sodium * factor),
		Serving:  serving,
	}
}

// dedupeFoods drops later entries whose (name, brand) pair matches an earlier
// one, case-insensitively, and truncates to max.
func dedupeFoods(in []NormalizedFood, max int) []NormalizedFood {
	seen := make(map[string]struct{}, len(in))
	out := make([]NormalizedFood, 0, len(in))
	for _, f := range in {
		key := strings.ToLower(f.Name) + "|" + strings.ToLower(f.Brand)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
		if len(out) == max {
			break
		}
	}
	return out
}

// CustomFoodInput carries a user-defined food. Nutrient values are per the
// stated serving.
type CustomFoodInput struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
}

func (in *CustomFoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidField("name", "is required")
	}
	for field, v := range map[string]float64{
		"calories": in.Calories,
		"protein":  in.Protein,
		"carbs":    in.Carbs,
		"fat":      in.Fat,
		"fiber":    in.Fiber,
		"sugar":    in.Sugar,
		"sodium":   in.Sodium,
	} {
		if v < 0 {
			return invalidField(field, "must not be negative")
		}
	}
	return nil
}

// CreateCustomFood persists a user-defined food as a cache record. The stated
// per-serving nutrients are stored as per-100g with serving_weight_g fixed at
// 100, so normalization reproduces them unchanged.
func (s *FoodService) CreateCustomFood(userID uint, in CustomFoodInput) (*NormalizedFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	serving := strings.TrimSpace(in.ServingSize)
	if serving == "" {
		serving = "1 serving"
	}

	rec := models.Food{
		ExternalID:     "custom-" + uuid.NewString(),
		Source:         models.SourceCustom,
		Name:           strings.TrimSpace(in.Name),
		Brand:          strings.TrimSpace(in.Brand),
		Calories:       in.Calories,
		Protein:        in.Protein,
		Carbs:          in.Carbs,
		Fat:            in.Fat,
		Fiber:          in.Fiber,
		Sugar:          in.Sugar,
		Sodium:         in.Sodium,
		ServingSize:    serving,
		ServingWeightG: 100,
		CreatedBy:      &userID,
		LastFetched:    time.Now(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save custom food: %w", err)
	}

	nf := normalizeRecord(&rec, models.SourceCustom)
	return &nf, nil
}

// UpdateCustomFood edits a custom food owned by the user. Only custom records
// are editable; cached remote records are refreshed by search, not by users.
func (s *FoodService) UpdateCustomFood(userID uint, foodID uint, in CustomFoodInput) (*NormalizedFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var rec models.Food
	err := s.db.
		Where("id = ? AND source = ? AND created_by = ?", foodID, models.SourceCustom, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load custom food: %w", err)
	}

	rec.Name = strings.TrimSpace(in.Name)
	rec.Brand = strings.TrimSpace(in.Brand)
	rec.Calories = in.Calories
	rec.Protein = in.Protein
	rec.Carbs = in.Carbs
	rec.Fat = in.Fat
	rec.Fiber = in.Fiber
	rec.Sugar = in.Sugar
	rec.Sodium = in.Sodium
	if s := strings.TrimSpace(in.ServingSize); s != "" {
		rec.ServingSize = s
	}
	rec.LastFetched = time.Now()

	if err := s.db.Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to update custom food: %w", err)
	}

	nf := normalizeRecord(&rec, models.SourceCustom)
	return &nf, nil
}
