package services

import (
	"fmt"
	"strings"
)

// DeficitPlan holds a calorie deficit recommendation for weight loss
type DeficitPlan struct {
	TDEE                  float64
	TargetCalories        float64
	DailyDeficit          float64
	WeeklyDeficit         float64
	AchievableLossPerWeek float64
	Warning               string
	ExerciseBurnTarget    float64
	DietReductionTarget   float64
}

type localActivity struct {
	name       string
	calPerHour float64
	intensity  string
}

// Reference calories-per-hour values for a 70 kg person.
var localActivities = map[string][]localActivity{
	"beginner": {
		{"Walking (5 km/h)", 240, "low"},
		{"Swimming (easy)", 360, "low"},
		{"Yoga", 180, "low"},
		{"Cycling (15 km/h)", 360, "medium"},
	},
	"intermediate": {
		{"Jogging (8 km/h)", 480, "medium"},
		{"Aerobics", 420, "medium"},
		{"Cycling (20 km/h)", 540, "medium"},
		{"Dancing", 330, "medium"},
	},
	"advanced": {
		{"Running (12 km/h)", 720, "high"},
		{"HIIT workout", 660, "high"},
		{"Swimming (fast)", 600, "high"},
		{"Jump rope", 750, "high"},
	},
}

// calculateDeficitRecommendation sizes a safe daily calorie deficit for the
// requested weekly weight loss. 1 kg of fat is about 7700 kcal; the deficit
// is kept between 15% and 25% of TDEE and the resulting intake never drops
// below 60% of TDEE.
func calculateDeficitRecommendation(tdee, targetKgPerWeek float64) DeficitPlan {
	weeklyDeficitNeeded := targetKgPerWeek * 7700
	dailyDeficit := weeklyDeficitNeeded / 7

	maxSafeDeficit := tdee * 0.25
	minDeficit := tdee * 0.15

	plan := DeficitPlan{TDEE: tdee}
	switch {
	case dailyDeficit > maxSafeDeficit:
		plan.DailyDeficit = maxSafeDeficit
		plan.AchievableLossPerWeek = (maxSafeDeficit * 7) / 7700
		plan.Warning = "The requested pace is too fast. A slower weight loss is recommended."
	case dailyDeficit < minDeficit:
		plan.DailyDeficit = minDeficit
		plan.AchievableLossPerWeek = (minDeficit * 7) / 7700
	default:
		plan.DailyDeficit = dailyDeficit
		plan.AchievableLossPerWeek = targetKgPerWeek
	}

	plan.TargetCalories = tdee - plan.DailyDeficit

	minCalories := tdee * 0.60
	if plan.TargetCalories < minCalories {
		plan.TargetCalories = minCalories
		plan.DailyDeficit = tdee - plan.TargetCalories
		plan.AchievableLossPerWeek = (plan.DailyDeficit * 7) / 7700
		plan.Warning = "The minimum safe calorie intake has been reached."
	}

	plan.WeeklyDeficit = plan.DailyDeficit * 7
	plan.ExerciseBurnTarget = plan.DailyDeficit * 0.4
	plan.DietReductionTarget = plan.DailyDeficit * 0.6

	return plan
}

// generateExerciseRecommendations builds a local exercise suggestion text for
// burning targetCalories. Reference values are scaled by weight relative to a
// 70 kg person; activities needing more than two hours are skipped.
func generateExerciseRecommendations(targetCalories, weight float64, fitnessLevel string) string {
	weightFactor := weight / 70.0

	activities, ok := localActivities[fitnessLevel]
	if !ok {
		activities = localActivities["beginner"]
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("To burn %.0f kcal (weight %.0f kg):\n", targetCalories, weight))

	for _, activity := range activities {
		calPerHour := activity.calPerHour * weightFactor
		minutesNeeded := (targetCalories / calPerHour) * 60

		if minutesNeeded < 120 {
			lines = append(lines, fmt.Sprintf("- %s: %.0f minutes (%.0f kcal/hour, intensity: %s)",
				activity.name, minutesNeeded, calPerHour, activity.intensity))
		}
	}

	lines = append(lines, "\nTip: combine different activities for the best result.")

	return strings.Join(lines, "\n")
}

// formatWeightLossPlan renders the deficit plan with exercise suggestions
func formatWeightLossPlan(plan DeficitPlan, exercises string) string {
	var lines []string
	lines = append(lines, "Weight loss plan:\n")
	lines = append(lines, fmt.Sprintf("- Your TDEE: %.0f kcal/day", plan.TDEE))
	lines = append(lines, fmt.Sprintf("- Target intake: %.0f kcal/day", plan.TargetCalories))
	lines = append(lines, fmt.Sprintf("- Deficit: %.0f kcal/day (%.0f kcal/week)", plan.DailyDeficit, plan.WeeklyDeficit))
	lines = append(lines, fmt.Sprintf("- Projected weight loss: %.1f kg/week", plan.AchievableLossPerWeek))

	if plan.Warning != "" {
		lines = append(lines, "\n"+plan.Warning)
	}

	lines = append(lines, "\nHow to create the deficit:")
	lines = append(lines, fmt.Sprintf("- Diet reduction: %.0f kcal (60%%)", plan.DietReductionTarget))
	lines = append(lines, fmt.Sprintf("- Physical activity: %.0f kcal (40%%)", plan.ExerciseBurnTarget))

	if exercises != "" {
		lines = append(lines, "\n"+exercises)
	}

	return strings.Join(lines, "\n")
}
