package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/medcalc/backend/internal/domain"
)

// Fixed activity set tried for sample exercise entries, in order.
var sampleActivityNames = []string{"running", "swimming", "cycling", "yoga", "walking", "rowing"}

const (
	sampleDurationMinutes = 30
	maxSampleEntries      = 4
	defaultLossPerWeekKg  = 0.5
)

// EnrichmentService produces optional calorie advice for calculation results.
// It tries the external calories provider first and falls back to locally
// generated recommendations; it never returns an error.
type EnrichmentService struct {
	provider domain.ActivityCaloriesProvider // nil when the external API is disabled
}

// NewEnrichmentService creates an enrichment service. provider may be nil.
func NewEnrichmentService(provider domain.ActivityCaloriesProvider) *EnrichmentService {
	return &EnrichmentService{provider: provider}
}

// CalorieAdvice builds advice text for a calorie calculation. Overweight
// users (BMI >= 25) get a weight loss plan; others get sample 30-minute
// exercise entries. Returns "" only if nothing could be produced.
func (s *EnrichmentService) CalorieAdvice(ctx context.Context, bmi, tdee, weight float64) string {
	if bmi >= 25 {
		return s.weightLossPlan(tdee, weight)
	}
	return s.sampleExerciseEntries(ctx, weight)
}

func (s *EnrichmentService) weightLossPlan(tdee, weight float64) string {
	plan := calculateDeficitRecommendation(tdee, defaultLossPerWeekKg)
	exercises := generateExerciseRecommendations(plan.ExerciseBurnTarget, weight, "intermediate")
	return formatWeightLossPlan(plan, exercises)
}

// sampleExerciseEntries asks the provider for 30-minute calorie burns of the
// fixed activity set, stopping after four successful lookups. When the
// provider yields nothing the local generator takes over.
func (s *EnrichmentService) sampleExerciseEntries(ctx context.Context, weight float64) string {
	var lines []string

	if s.provider != nil {
		collected := 0
		for _, activity := range sampleActivityNames {
			if collected >= maxSampleEntries {
				break
			}
			results := s.provider.GetCaloriesBurned(ctx, activity, weight, sampleDurationMinutes)
			if len(results) == 0 {
				continue
			}
			entry := results[0]
			lines = append(lines, fmt.Sprintf("- %s: %.0f kcal per %d minutes (%.0f kcal/hour)",
				entry.Name, entry.TotalCalories, sampleDurationMinutes, entry.CaloriesPerHour))
			collected++
		}
	}

	if len(lines) == 0 {
		return generateExerciseRecommendations(300, weight, "beginner")
	}

	return "Sample activities to stay in shape:\n" + strings.Join(lines, "\n")
}
