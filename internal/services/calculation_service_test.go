package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) (*repository.CalculatorRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return repository.NewCalculatorRepository(db), db
}

func countUsers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&database.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	return count
}

func TestSubmitBMI(t *testing.T) {
	repo, db := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)
	ctx := context.Background()

	calc, err := svc.SubmitBMI(ctx, domain.BMIInput{UserID: "user-1", Weight: 70, Height: 175})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calc.CalcType != domain.CalcTypeIMT {
		t.Fatalf("expected calc type imt, got %q", calc.CalcType)
	}
	if calc.Result != 22.9 {
		t.Fatalf("expected result 22.9, got %v", calc.Result)
	}
	if calc.Interpretation == nil || *calc.Interpretation != "Normal weight" {
		t.Fatalf("unexpected interpretation: %v", calc.Interpretation)
	}

	var stored map[string]float64
	if err := json.Unmarshal([]byte(calc.InputData), &stored); err != nil {
		t.Fatalf("input data is not valid json: %v", err)
	}
	if stored["weight"] != 70 || stored["height"] != 175 {
		t.Fatalf("unexpected stored input: %v", stored)
	}

	if countUsers(t, db) != 1 {
		t.Fatal("expected the user to be created")
	}
}

func TestSubmitBMI_ReusesExistingUser(t *testing.T) {
	repo, db := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)
	ctx := context.Background()

	if _, err := svc.SubmitBMI(ctx, domain.BMIInput{UserID: "user-1", Weight: 70, Height: 175}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SubmitBMI(ctx, domain.BMIInput{UserID: "user-1", Weight: 72, Height: 175}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if users := countUsers(t, db); users != 1 {
		t.Fatalf("expected 1 user, got %d", users)
	}

	_, total, err := repo.ListUserCalculations(ctx, "user-1", 10, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 calculations, got %d", total)
	}
}

func TestSubmitBMI_InvalidInput(t *testing.T) {
	repo, db := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	_, err := svc.SubmitBMI(context.Background(), domain.BMIInput{UserID: "user-1", Weight: -5, Height: 175})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var calcs int64
	db.Model(&database.Calculation{}).Count(&calcs)
	if calcs != 0 {
		t.Fatalf("expected no calculation to be persisted, got %d", calcs)
	}
}

func TestSubmitCalories(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	calc, err := svc.SubmitCalories(context.Background(), domain.CaloriesInput{
		UserID:        "user-1",
		Age:           25,
		Weight:        70,
		Height:        175,
		Gender:        "m",
		ActivityLevel: 1.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calc.CalcType != domain.CalcTypeCalories {
		t.Fatalf("expected calc type calories, got %q", calc.CalcType)
	}
	// 1724.1 BMR at minimal activity
	if calc.Result != 2068.9 {
		t.Fatalf("expected TDEE 2068.9, got %v", calc.Result)
	}
	if calc.Interpretation == nil {
		t.Fatal("expected an interpretation")
	}
	if !strings.Contains(*calc.Interpretation, "BMR: 1724 kcal, TDEE: 2069 kcal") {
		t.Fatalf("unexpected interpretation: %q", *calc.Interpretation)
	}
	if !strings.Contains(*calc.Interpretation, "Minimal activity") {
		t.Fatalf("expected activity description, got %q", *calc.Interpretation)
	}
}

func TestSubmitCalories_DefaultActivityLevel(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	calc, err := svc.SubmitCalories(context.Background(), domain.CaloriesInput{
		UserID: "user-1",
		Age:    25,
		Weight: 70,
		Height: 175,
		Gender: "m",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored map[string]interface{}
	if err := json.Unmarshal([]byte(calc.InputData), &stored); err != nil {
		t.Fatalf("input data is not valid json: %v", err)
	}
	if stored["activity_level"] != 1.5 {
		t.Fatalf("expected default activity level 1.5, got %v", stored["activity_level"])
	}
	if !strings.Contains(*calc.Interpretation, "Activity level: 1.5") {
		t.Fatalf("unexpected interpretation: %q", *calc.Interpretation)
	}
}

func TestSubmitCalories_AppendsEnrichmentAdvice(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, NewEnrichmentService(nil))

	// BMI 22.9, so the advice is sample exercise entries via local fallback
	calc, err := svc.SubmitCalories(context.Background(), domain.CaloriesInput{
		UserID:        "user-1",
		Age:           25,
		Weight:        70,
		Height:        175,
		Gender:        "m",
		ActivityLevel: 1.55,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.SplitN(*calc.Interpretation, "\n\n", 2)
	if len(parts) != 2 {
		t.Fatalf("expected advice appended after a blank line, got %q", *calc.Interpretation)
	}
	if !strings.Contains(parts[1], "To burn 300 kcal") {
		t.Fatalf("unexpected advice: %q", parts[1])
	}
}

func TestSubmitCalories_OverweightGetsWeightLossPlan(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, NewEnrichmentService(nil))

	// BMI 29.4
	calc, err := svc.SubmitCalories(context.Background(), domain.CaloriesInput{
		UserID:        "user-1",
		Age:           30,
		Weight:        90,
		Height:        175,
		Gender:        "m",
		ActivityLevel: 1.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(*calc.Interpretation, "Weight loss plan:") {
		t.Fatalf("expected a weight loss plan, got %q", *calc.Interpretation)
	}
}

func TestSubmitCalories_InvalidGender(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	_, err := svc.SubmitCalories(context.Background(), domain.CaloriesInput{
		UserID:        "user-1",
		Age:           25,
		Weight:        70,
		Height:        175,
		Gender:        "x",
		ActivityLevel: 1.55,
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitBloodPressure(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	calc, err := svc.SubmitBloodPressure(context.Background(), domain.BloodPressureInput{
		UserID:   "user-1",
		Systolic: 135, Diastolic: 85,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calc.CalcType != domain.CalcTypeBloodPressure {
		t.Fatalf("expected calc type blood_pressure, got %q", calc.CalcType)
	}
	if calc.Result != 135 {
		t.Fatalf("expected systolic stored as result, got %v", calc.Result)
	}
	if !strings.Contains(*calc.Interpretation, "Hypertension stage I") {
		t.Fatalf("unexpected interpretation: %q", *calc.Interpretation)
	}
}

func TestSubmitBloodPressure_InvalidReading(t *testing.T) {
	repo, _ := setupTestRepo(t)
	svc := NewCalculationService(repo, nil)

	_, err := svc.SubmitBloodPressure(context.Background(), domain.BloodPressureInput{
		UserID:   "user-1",
		Systolic: 90, Diastolic: 95,
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
