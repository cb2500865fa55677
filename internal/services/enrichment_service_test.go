package services

import (
	"context"
	"strings"
	"testing"

	"github.com/medcalc/backend/internal/domain"
)

// fakeProvider serves canned calorie records for a fixed set of activities.
type fakeProvider struct {
	known map[string]domain.ActivityCalories
	calls []string
}

func (f *fakeProvider) GetCaloriesBurned(ctx context.Context, activity string, weightKg float64, durationMinutes int) []domain.ActivityCalories {
	f.calls = append(f.calls, activity)
	record, ok := f.known[activity]
	if !ok {
		return nil
	}
	return []domain.ActivityCalories{record}
}

func TestCalorieAdvice_OverweightGetsWeightLossPlan(t *testing.T) {
	svc := NewEnrichmentService(nil)

	advice := svc.CalorieAdvice(context.Background(), 27.5, 2500, 85)
	if !strings.Contains(advice, "Weight loss plan:") {
		t.Fatalf("expected a weight loss plan, got:\n%s", advice)
	}
	if !strings.Contains(advice, "Your TDEE: 2500 kcal/day") {
		t.Fatalf("expected TDEE line, got:\n%s", advice)
	}
}

func TestCalorieAdvice_NormalWeightGetsSampleEntries(t *testing.T) {
	provider := &fakeProvider{known: map[string]domain.ActivityCalories{
		"running":  {Name: "Running", CaloriesPerHour: 600, TotalCalories: 300},
		"swimming": {Name: "Swimming", CaloriesPerHour: 500, TotalCalories: 250},
		"cycling":  {Name: "Cycling", CaloriesPerHour: 450, TotalCalories: 225},
		"yoga":     {Name: "Yoga", CaloriesPerHour: 200, TotalCalories: 100},
		"walking":  {Name: "Walking", CaloriesPerHour: 250, TotalCalories: 125},
		"rowing":   {Name: "Rowing", CaloriesPerHour: 550, TotalCalories: 275},
	}}
	svc := NewEnrichmentService(provider)

	advice := svc.CalorieAdvice(context.Background(), 22.0, 2200, 70)
	if !strings.Contains(advice, "Sample activities to stay in shape:") {
		t.Fatalf("expected sample entries, got:\n%s", advice)
	}

	// Stops after four successful lookups
	entries := strings.Count(advice, "- ")
	if entries != 4 {
		t.Fatalf("expected 4 entries, got %d:\n%s", entries, advice)
	}
	if len(provider.calls) != 4 {
		t.Fatalf("expected 4 provider calls, got %v", provider.calls)
	}
	if strings.Contains(advice, "Walking") || strings.Contains(advice, "Rowing") {
		t.Fatalf("expected only the first four activities, got:\n%s", advice)
	}
}

func TestCalorieAdvice_SkipsFailedLookups(t *testing.T) {
	provider := &fakeProvider{known: map[string]domain.ActivityCalories{
		"yoga":    {Name: "Yoga", CaloriesPerHour: 200, TotalCalories: 100},
		"walking": {Name: "Walking", CaloriesPerHour: 250, TotalCalories: 125},
	}}
	svc := NewEnrichmentService(provider)

	advice := svc.CalorieAdvice(context.Background(), 22.0, 2200, 70)
	if !strings.Contains(advice, "Yoga") || !strings.Contains(advice, "Walking") {
		t.Fatalf("expected entries for the activities the provider knows, got:\n%s", advice)
	}
	// All six activities are tried since only two succeed
	if len(provider.calls) != len(sampleActivityNames) {
		t.Fatalf("expected %d provider calls, got %v", len(sampleActivityNames), provider.calls)
	}
}

func TestCalorieAdvice_FallsBackToLocalRecommendations(t *testing.T) {
	for name, svc := range map[string]*EnrichmentService{
		"nil provider":   NewEnrichmentService(nil),
		"empty provider": NewEnrichmentService(&fakeProvider{}),
	} {
		advice := svc.CalorieAdvice(context.Background(), 22.0, 2200, 70)
		if !strings.Contains(advice, "To burn 300 kcal") {
			t.Fatalf("%s: expected local fallback recommendations, got:\n%s", name, advice)
		}
	}
}
