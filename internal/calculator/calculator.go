package calculator

import (
	"fmt"
	"math"

	apperrors "github.com/medcalc/backend/internal/errors"
)

// Activity factors for TDEE with their descriptions.
var activityDescriptions = map[float64]string{
	1.2:   "Minimal activity (sedentary lifestyle)",
	1.375: "Light activity (1-3 days/week)",
	1.55:  "Moderate activity (3-5 days/week)",
	1.725: "High activity (6-7 days/week)",
	1.9:   "Extreme activity (twice a day)",
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CalculateBMI computes the Body Mass Index from weight in kilograms and
// height in centimeters. Returns the rounded value with a WHO interpretation.
func CalculateBMI(weight, height float64) (float64, string, error) {
	if weight <= 0 || height <= 0 {
		return 0, "", apperrors.NewValidationError("weight and height must be positive")
	}

	heightM := height / 100
	bmi := round1(weight / (heightM * heightM))

	var interpretation string
	switch {
	case bmi < 16:
		interpretation = "Severe underweight"
	case bmi < 18.5:
		interpretation = "Underweight"
	case bmi < 25:
		interpretation = "Normal weight"
	case bmi < 30:
		interpretation = "Overweight (pre-obesity)"
	case bmi < 35:
		interpretation = "Obesity class I"
	case bmi < 40:
		interpretation = "Obesity class II"
	default:
		interpretation = "Obesity class III (morbid)"
	}

	return bmi, interpretation, nil
}

// CalculateBMR computes the Basal Metabolic Rate using the Harris-Benedict
// equation (1984 revision). Gender accepts "м"/"ж" or "m"/"f".
func CalculateBMR(age int, weight, height float64, gender string) (float64, error) {
	if age <= 0 || weight <= 0 || height <= 0 {
		return 0, apperrors.NewValidationError("age, weight and height must be positive")
	}

	var bmr float64
	switch gender {
	case "м", "m":
		bmr = 88.362 + 13.397*weight + 4.799*height - 5.677*float64(age)
	case "ж", "f":
		bmr = 447.593 + 9.247*weight + 3.098*height - 4.330*float64(age)
	default:
		return 0, apperrors.NewValidationError("gender must be 'м'/'m' or 'ж'/'f'")
	}

	return round1(bmr), nil
}

// CalculateTDEE computes Total Daily Energy Expenditure from BMR and an
// activity factor between 1.0 and 2.5.
func CalculateTDEE(bmr, activityLevel float64) (float64, error) {
	if bmr <= 0 {
		return 0, apperrors.NewValidationError("BMR must be positive")
	}
	if activityLevel < 1.0 || activityLevel > 2.5 {
		return 0, apperrors.NewValidationError("activity level must be between 1.0 and 2.5")
	}

	return round1(bmr * activityLevel), nil
}

// CalculateCalories composes BMR and TDEE and labels the activity factor.
func CalculateCalories(age int, weight, height float64, gender string, activityLevel float64) (float64, float64, string, error) {
	bmr, err := CalculateBMR(age, weight, height, gender)
	if err != nil {
		return 0, 0, "", err
	}

	tdee, err := CalculateTDEE(bmr, activityLevel)
	if err != nil {
		return 0, 0, "", err
	}

	interpretation, ok := activityDescriptions[activityLevel]
	if !ok {
		interpretation = fmt.Sprintf("Activity level: %g", activityLevel)
	}

	return bmr, tdee, interpretation, nil
}

// ClassifyBloodPressure categorizes a blood pressure reading per the
// ACC/AHA 2017 classification. Rules are evaluated most severe first.
func ClassifyBloodPressure(systolic, diastolic int) (string, string, error) {
	if systolic <= 0 || diastolic <= 0 {
		return "", "", apperrors.NewValidationError("blood pressure values must be positive")
	}
	if systolic < diastolic {
		return "", "", apperrors.NewValidationError("systolic pressure cannot be lower than diastolic")
	}

	var category, recommendation string
	switch {
	case systolic > 180 || diastolic > 120:
		category = "Hypertensive crisis"
		recommendation = "Seek medical attention IMMEDIATELY. Call emergency services."
	case systolic >= 140 || diastolic >= 90:
		category = "Hypertension stage II"
		recommendation = "Consult a doctor; medication is likely required."
	case systolic >= 130 || diastolic >= 80:
		category = "Hypertension stage I"
		recommendation = "Consult a doctor and adjust your lifestyle."
	case systolic >= 120 && diastolic < 80:
		category = "Elevated blood pressure"
		recommendation = "Monitor your blood pressure and keep a healthy lifestyle."
	default:
		category = "Normal blood pressure"
		recommendation = "Your blood pressure is normal. Keep it up."
	}

	return category, recommendation, nil
}

// CalculateIdealWeight computes the ideal body weight via the Devine (1974)
// formula and returns it together with a ±10% margin.
func CalculateIdealWeight(height float64, gender string) (float64, float64, error) {
	if height <= 0 {
		return 0, 0, apperrors.NewValidationError("height must be positive")
	}

	heightInches := height / 2.54

	var ideal float64
	switch gender {
	case "м", "m":
		ideal = 50 + 2.3*(heightInches-60)
	case "ж", "f":
		ideal = 45.5 + 2.3*(heightInches-60)
	default:
		return 0, 0, apperrors.NewValidationError("gender must be 'м'/'m' or 'ж'/'f'")
	}

	margin := ideal * 0.1

	return round1(ideal), round1(margin), nil
}

// Water intake additions in liters per activity level.
var waterActivityAdditions = map[string]float64{
	"low":      0,
	"moderate": 0.5,
	"high":     1.0,
}

// CalculateWaterIntake computes the recommended daily water intake in liters:
// 35 ml per kg of body weight plus an activity-dependent addition.
// Unrecognized activity levels fall back to moderate.
func CalculateWaterIntake(weight float64, activityLevel string) (float64, error) {
	if weight <= 0 {
		return 0, apperrors.NewValidationError("weight must be positive")
	}

	addition, ok := waterActivityAdditions[activityLevel]
	if !ok {
		addition = 0.5
	}

	return round1(weight*0.035 + addition), nil
}
