package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStyle(t *testing.T) {
	tests := []struct {
		name string
		line string
		want StyleCheck
	}{
		{"strong and quantified", "Reduced latency by 40%", StyleCheck{StrongVerb: true, Quantified: true}},
		{"bullet prefix ignored", "- Shipped 3 services", StyleCheck{StrongVerb: true, Quantified: true}},
		{"past tense heuristic", "Automated deploys", StyleCheck{StrongVerb: true}},
		{"weak opener", "Responsible for 2 teams", StyleCheck{Quantified: true}},
		{"empty", "", StyleCheck{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckStyle(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.StrongVerb && tt.want.Quantified, got.OK())
		})
	}
}

func TestSuggestions(t *testing.T) {
	text := "I worked on billing and helped support.\n- Fixed bugs\n- Cut costs by 20%"

	got := Suggestions(text)

	assert.Contains(t, got, `Replace "worked on" with stronger verbs like "developed", "implemented", or "created"`)
	assert.Contains(t, got, `Replace "helped" with "assisted", "supported", or "contributed to"`)
	assert.Contains(t, got, "Consider adding these relevant skills: Problem Solving, Critical Thinking, Analytical Skills, Team Collaboration, Leadership")
	assert.Contains(t, got, `Quantify the impact of "Fixed bugs"`)
	assert.NotContains(t, got, `Quantify the impact of "Cut costs by 20%"`)
	assert.Equal(t, got, Suggestions(text))
}
