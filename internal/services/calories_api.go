package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/medcalc/backend/internal/domain"
	"github.com/medcalc/backend/internal/logger"
)

const (
	apiNinjasBaseURL = "https://api.api-ninjas.com/v1"
	apiTimeout       = 10 * time.Second
	cacheTTL         = 24 * time.Hour
	kgToLbs          = 2.20462
)

// CaloriesAPIService is a client for the API Ninjas calories-burned API.
// Every failure (timeout, non-2xx, parse error) degrades to an empty result;
// errors never propagate to callers.
type CaloriesAPIService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      domain.Cache // optional
}

// NewCaloriesAPIService creates a new calories API client. cache may be nil.
func NewCaloriesAPIService(apiKey string, cache domain.Cache) *CaloriesAPIService {
	return &CaloriesAPIService{
		apiKey:     apiKey,
		baseURL:    apiNinjasBaseURL,
		httpClient: &http.Client{Timeout: apiTimeout},
		cache:      cache,
	}
}

// GetCaloriesBurned returns activity records matching the given activity
// name. Weight is converted to pounds as the API expects. An empty slice is
// returned on any failure.
func (s *CaloriesAPIService) GetCaloriesBurned(ctx context.Context, activity string, weightKg float64, durationMinutes int) []domain.ActivityCalories {
	params := url.Values{}
	params.Set("activity", activity)

	if weightKg > 0 {
		params.Set("weight", fmt.Sprintf("%d", int(weightKg*kgToLbs)))
	}
	if durationMinutes > 0 {
		params.Set("duration", fmt.Sprintf("%d", durationMinutes))
	}

	cacheKey := fmt.Sprintf("caloriesburned:%s", params.Encode())
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			var results []domain.ActivityCalories
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return results
			}
		}
	}

	body := s.doGet(ctx, "/caloriesburned", params)
	if body == nil {
		return nil
	}

	var results []domain.ActivityCalories
	if err := json.Unmarshal(body, &results); err != nil {
		logger.Errorf("API Ninjas parse error: %v", err)
		return nil
	}

	logger.Infof("API Ninjas success: %d activities found for %q", len(results), activity)

	if s.cache != nil && len(results) > 0 {
		if encoded, err := json.Marshal(results); err == nil {
			s.cache.Set(ctx, cacheKey, string(encoded), cacheTTL)
		}
	}

	return results
}

// GetSupportedActivities returns the list of activity names the API knows
func (s *CaloriesAPIService) GetSupportedActivities(ctx context.Context) []string {
	body := s.doGet(ctx, "/caloriesburnedactivities", nil)
	if body == nil {
		return nil
	}

	var activities []string
	if err := json.Unmarshal(body, &activities); err != nil {
		logger.Errorf("Activities list parse error: %v", err)
		return nil
	}

	return activities
}

func (s *CaloriesAPIService) doGet(ctx context.Context, path string, params url.Values) []byte {
	endpoint := s.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Errorf("API Ninjas request build failed: %v", err)
		return nil
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Errorf("API Ninjas request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Errorf("API Ninjas read failed: %v", err)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("API Ninjas error: %d - %s", resp.StatusCode, string(body))
		return nil
	}

	return body
}
