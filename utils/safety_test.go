package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsUnhealthyPrompt(t *testing.T) {
	tests := []struct {
		prompt string
		want   bool
	}{
		{"How can I eat only 500 calories a day?", true},
		{"should I starve myself before the weekend", true},
		{"Is it ok to SKIP MEALS to cut weight?", true},
		{"I want to lose 10 lbs in 3 days", true},
		{"thoughts on fasting for days at a time", true},
		{"What's a balanced dinner with chicken?", false},
		{"Suggest a high protein breakfast", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			require.Equal(t, tt.want, IsUnhealthyPrompt(tt.prompt))
		})
	}
}
