package calculator

import (
	"testing"

	apperrors "github.com/medcalc/backend/internal/errors"
)

func TestCalculateBMI(t *testing.T) {
	bmi, interpretation, err := CalculateBMI(70, 175)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmi != 22.9 {
		t.Fatalf("expected BMI 22.9, got %v", bmi)
	}
	if interpretation != "Normal weight" {
		t.Fatalf("expected normal weight interpretation, got %q", interpretation)
	}
}

// With height 100 cm the BMI equals the weight, which makes threshold
// boundaries directly addressable.
func TestCalculateBMI_CategoryBoundaries(t *testing.T) {
	cases := []struct {
		weight   float64
		category string
	}{
		{15.9, "Severe underweight"},
		{16.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight (pre-obesity)"},
		{29.9, "Overweight (pre-obesity)"},
		{30.0, "Obesity class I"},
		{34.9, "Obesity class I"},
		{35.0, "Obesity class II"},
		{39.9, "Obesity class II"},
		{40.0, "Obesity class III (morbid)"},
	}

	for _, tc := range cases {
		_, category, err := CalculateBMI(tc.weight, 100)
		if err != nil {
			t.Fatalf("unexpected error for weight %v: %v", tc.weight, err)
		}
		if category != tc.category {
			t.Errorf("BMI %v: expected %q, got %q", tc.weight, tc.category, category)
		}
	}
}

func TestCalculateBMI_Monotonicity(t *testing.T) {
	low, _, _ := CalculateBMI(60, 175)
	high, _, _ := CalculateBMI(90, 175)
	if high <= low {
		t.Errorf("BMI should increase with weight: %v vs %v", low, high)
	}

	tall, _, _ := CalculateBMI(70, 190)
	short, _, _ := CalculateBMI(70, 160)
	if tall >= short {
		t.Errorf("BMI should decrease with height: %v vs %v", tall, short)
	}
}

func TestCalculateBMI_InvalidInput(t *testing.T) {
	for _, tc := range []struct{ weight, height float64 }{
		{0, 175}, {-10, 175}, {70, 0}, {70, -5},
	} {
		_, _, err := CalculateBMI(tc.weight, tc.height)
		if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			t.Errorf("weight=%v height=%v: expected validation error, got %v", tc.weight, tc.height, err)
		}
	}
}

func TestCalculateBMR(t *testing.T) {
	male, err := CalculateBMR(25, 70, 175, "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if male != 1724.1 {
		t.Fatalf("expected male BMR 1724.1, got %v", male)
	}

	female, err := CalculateBMR(25, 60, 165, "f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if female != 1405.3 {
		t.Fatalf("expected female BMR 1405.3, got %v", female)
	}
}

func TestCalculateBMR_AcceptsCyrillicGender(t *testing.T) {
	ascii, _ := CalculateBMR(30, 80, 180, "m")
	cyrillic, err := CalculateBMR(30, 80, 180, "м")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ascii != cyrillic {
		t.Fatalf("'м' and 'm' should agree: %v vs %v", cyrillic, ascii)
	}

	asciiF, _ := CalculateBMR(30, 60, 165, "f")
	cyrillicF, err := CalculateBMR(30, 60, 165, "ж")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asciiF != cyrillicF {
		t.Fatalf("'ж' and 'f' should agree: %v vs %v", cyrillicF, asciiF)
	}
}

func TestCalculateBMR_InvalidInput(t *testing.T) {
	if _, err := CalculateBMR(0, 70, 175, "m"); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for zero age, got %v", err)
	}
	if _, err := CalculateBMR(25, 70, 175, "x"); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for unknown gender, got %v", err)
	}
}

func TestCalculateTDEE(t *testing.T) {
	tdee, err := CalculateTDEE(1700, 1.55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tdee != 2635.0 {
		t.Fatalf("expected TDEE 2635.0, got %v", tdee)
	}

	if _, err := CalculateTDEE(0, 1.5); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for zero BMR, got %v", err)
	}
	if _, err := CalculateTDEE(1700, 0.9); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for factor below 1.0, got %v", err)
	}
	if _, err := CalculateTDEE(1700, 2.6); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for factor above 2.5, got %v", err)
	}
}

func TestCalculateCalories_MatchesComposition(t *testing.T) {
	bmr, _ := CalculateBMR(25, 70, 175, "m")
	tdee, _ := CalculateTDEE(bmr, 1.55)

	composedBMR, composedTDEE, label, err := CalculateCalories(25, 70, 175, "m", 1.55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if composedBMR != bmr || composedTDEE != tdee {
		t.Fatalf("composition mismatch: (%v, %v) vs (%v, %v)", composedBMR, composedTDEE, bmr, tdee)
	}
	if label != "Moderate activity (3-5 days/week)" {
		t.Fatalf("unexpected activity label: %q", label)
	}
}

func TestCalculateCalories_UnknownFactorLabel(t *testing.T) {
	_, _, label, err := CalculateCalories(25, 70, 175, "m", 1.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Activity level: 1.6" {
		t.Fatalf("unexpected synthesized label: %q", label)
	}
}

func TestClassifyBloodPressure(t *testing.T) {
	category, _, err := ClassifyBloodPressure(110, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != "Normal blood pressure" {
		t.Fatalf("expected normal, got %q", category)
	}

	category, _, _ = ClassifyBloodPressure(145, 85)
	if category != "Hypertension stage II" {
		t.Fatalf("expected stage II, got %q", category)
	}

	category, _, _ = ClassifyBloodPressure(132, 84)
	if category != "Hypertension stage I" {
		t.Fatalf("expected stage I, got %q", category)
	}
}

// 120/80 falls into stage I because diastolic >= 80 is checked before the
// elevated branch's diastolic < 80 condition.
func TestClassifyBloodPressure_120_80(t *testing.T) {
	category, _, err := ClassifyBloodPressure(120, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != "Hypertension stage I" {
		t.Fatalf("expected stage I for 120/80, got %q", category)
	}

	category, _, _ = ClassifyBloodPressure(125, 75)
	if category != "Elevated blood pressure" {
		t.Fatalf("expected elevated for 125/75, got %q", category)
	}
}

func TestClassifyBloodPressure_CrisisDominates(t *testing.T) {
	category, recommendation, err := ClassifyBloodPressure(185, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != "Hypertensive crisis" {
		t.Fatalf("expected crisis for 185/70, got %q", category)
	}
	if recommendation == "" {
		t.Fatal("expected urgent-care advice")
	}
}

func TestClassifyBloodPressure_InvalidInput(t *testing.T) {
	if _, _, err := ClassifyBloodPressure(90, 95); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error when systolic < diastolic, got %v", err)
	}
	if _, _, err := ClassifyBloodPressure(0, 0); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for non-positive values, got %v", err)
	}
}

func TestCalculateIdealWeight(t *testing.T) {
	ideal, margin, err := CalculateIdealWeight(175, "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 175 cm = 68.9 in, 50 + 2.3*(68.9-60) = 70.5
	if ideal != 70.5 {
		t.Fatalf("expected ideal weight 70.5, got %v", ideal)
	}
	if margin != 7.0 {
		t.Fatalf("expected margin 7.0, got %v", margin)
	}

	if _, _, err := CalculateIdealWeight(0, "m"); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for zero height, got %v", err)
	}
	if _, _, err := CalculateIdealWeight(175, "unknown"); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for unknown gender, got %v", err)
	}
}

func TestCalculateWaterIntake(t *testing.T) {
	cases := []struct {
		weight   float64
		activity string
		expected float64
	}{
		{80, "low", 2.8},
		{80, "moderate", 3.3},
		{80, "high", 3.8},
		{80, "unknown", 3.3}, // defaults to moderate
	}

	for _, tc := range cases {
		got, err := CalculateWaterIntake(tc.weight, tc.activity)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.activity, err)
		}
		if got != tc.expected {
			t.Errorf("%v kg / %s: expected %v liters, got %v", tc.weight, tc.activity, tc.expected, got)
		}
	}

	if _, err := CalculateWaterIntake(0, "low"); !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for zero weight, got %v", err)
	}
}
