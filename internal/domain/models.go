package domain

// Calculation type tags
const (
	CalcTypeIMT           = "imt"
	CalcTypeCalories      = "calories"
	CalcTypeBloodPressure = "blood_pressure"
)

// KnownCalcType reports whether calcType is one of the supported kinds
func KnownCalcType(calcType string) bool {
	switch calcType {
	case CalcTypeIMT, CalcTypeCalories, CalcTypeBloodPressure:
		return true
	}
	return false
}

// BMIInput is the validated input of a BMI calculation
type BMIInput struct {
	UserID string  `json:"user_id" binding:"required"`
	Weight float64 `json:"weight" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

// CaloriesInput is the validated input of a BMR/TDEE calculation
type CaloriesInput struct {
	UserID        string  `json:"user_id" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel float64 `json:"activity_level"`
}

// BloodPressureInput is the validated input of a blood pressure reading
type BloodPressureInput struct {
	UserID    string `json:"user_id" binding:"required"`
	Systolic  int    `json:"systolic" binding:"required"`
	Diastolic int    `json:"diastolic" binding:"required"`
}

// HealthMetricInput is a caller-supplied health measurement
type HealthMetricInput struct {
	UserID     string  `json:"user_id" binding:"required"`
	MetricType string  `json:"metric_type" binding:"required"`
	Value      float64 `json:"value" binding:"required"`
	Unit       string  `json:"unit" binding:"required"`
	Notes      *string `json:"notes"`
}

// ActivityCalories is one activity record returned by the calories-burned API
type ActivityCalories struct {
	Name            string  `json:"name"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
	DurationMinutes float64 `json:"duration_minutes"`
	TotalCalories   float64 `json:"total_calories"`
}
