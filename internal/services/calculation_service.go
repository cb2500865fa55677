package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/medcalc/backend/internal/calculator"
	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/repository"
)

const defaultActivityLevel = 1.5

// CalculationService orchestrates one calculation request: it ensures the
// user exists, runs the formula, persists the record and returns it.
type CalculationService struct {
	repo       *repository.CalculatorRepository
	enrichment *EnrichmentService
}

// NewCalculationService creates a new calculation service
func NewCalculationService(repo *repository.CalculatorRepository, enrichment *EnrichmentService) *CalculationService {
	return &CalculationService{repo: repo, enrichment: enrichment}
}

// SubmitBMI computes and persists a BMI calculation
func (s *CalculationService) SubmitBMI(ctx context.Context, input domain.BMIInput) (*database.Calculation, error) {
	if _, err := s.repo.GetOrCreateUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	result, interpretation, err := calculator.CalculateBMI(input.Weight, input.Height)
	if err != nil {
		return nil, err
	}

	inputData, err := json.Marshal(map[string]float64{
		"weight": input.Weight,
		"height": input.Height,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return s.repo.CreateCalculation(ctx, &database.Calculation{
		UserID:         input.UserID,
		CalcType:       domain.CalcTypeIMT,
		InputData:      string(inputData),
		Result:         result,
		Interpretation: &interpretation,
	})
}

// SubmitCalories computes and persists a BMR/TDEE calculation. The stored
// result is the TDEE. When enrichment advice can be produced it is appended
// to the interpretation; enrichment failures never fail the request.
func (s *CalculationService) SubmitCalories(ctx context.Context, input domain.CaloriesInput) (*database.Calculation, error) {
	if input.ActivityLevel == 0 {
		input.ActivityLevel = defaultActivityLevel
	}

	if _, err := s.repo.GetOrCreateUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	bmr, tdee, activityDesc, err := calculator.CalculateCalories(input.Age, input.Weight, input.Height, input.Gender, input.ActivityLevel)
	if err != nil {
		return nil, err
	}

	interpretation := fmt.Sprintf("BMR: %.0f kcal, TDEE: %.0f kcal (%s)", bmr, tdee, activityDesc)

	if s.enrichment != nil {
		bmi, _, bmiErr := calculator.CalculateBMI(input.Weight, input.Height)
		if bmiErr == nil {
			if advice := s.enrichment.CalorieAdvice(ctx, bmi, tdee, input.Weight); advice != "" {
				interpretation += "\n\n" + advice
			}
		}
	}

	inputData, err := json.Marshal(map[string]interface{}{
		"age":            input.Age,
		"weight":         input.Weight,
		"height":         input.Height,
		"gender":         input.Gender,
		"activity_level": input.ActivityLevel,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return s.repo.CreateCalculation(ctx, &database.Calculation{
		UserID:         input.UserID,
		CalcType:       domain.CalcTypeCalories,
		InputData:      string(inputData),
		Result:         tdee,
		Interpretation: &interpretation,
	})
}

// SubmitBloodPressure classifies and persists a blood pressure reading. The
// stored result is the systolic value.
func (s *CalculationService) SubmitBloodPressure(ctx context.Context, input domain.BloodPressureInput) (*database.Calculation, error) {
	if _, err := s.repo.GetOrCreateUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	category, recommendation, err := calculator.ClassifyBloodPressure(input.Systolic, input.Diastolic)
	if err != nil {
		return nil, err
	}

	interpretation := fmt.Sprintf("%s: %s", category, recommendation)

	inputData, err := json.Marshal(map[string]int{
		"systolic":  input.Systolic,
		"diastolic": input.Diastolic,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return s.repo.CreateCalculation(ctx, &database.Calculation{
		UserID:         input.UserID,
		CalcType:       domain.CalcTypeBloodPressure,
		InputData:      string(inputData),
		Result:         float64(input.Systolic),
		Interpretation: &interpretation,
	})
}
