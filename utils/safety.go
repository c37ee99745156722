package utils

import "strings"

// Prompts asking for extreme or harmful dieting are rejected locally before
// anything is sent to the suggestion endpoint.
var unhealthyPromptPatterns = []string{
	"500 calories",
	"starve",
	"skip meals",
	"lose 10 lbs in 3 days",
	"fasting for days",
}

func IsUnhealthyPrompt(input string) bool {
	lower := strings.ToLower(input)
	for _, pattern := range unhealthyPromptPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
