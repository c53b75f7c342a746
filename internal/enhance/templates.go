package enhance

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// achievementTemplates rewrite vague experience lines into achievement form.
var achievementTemplates = []string{
	"Developed and deployed {project} using {technologies}, improving {metric} by {percentage}%",
	"Built {project} with {technologies}, resulting in {outcome}",
	"Created {project} that {achievement}",
	"Implemented {feature} using {technologies}, reducing {metric} by {percentage}%",
}

// templateTech are the technologies recognized inside a vague line.
var templateTech = []string{"React", "Python", "JavaScript", "Node.js", "MongoDB", "SQL", "AWS", "Docker"}

var placeholderChoices = map[string][]string{
	"metric":      {"performance", "efficiency", "user engagement", "processing speed", "response time"},
	"outcome":     {"increased user satisfaction", "improved system reliability", "enhanced user experience"},
	"achievement": {"streamlined business processes", "enhanced user experience", "improved system performance"},
	"feature":     {"user authentication", "data visualization", "real-time updates", "responsive design"},
}

// placeholderOrder fixes the order of random draws for a given seed.
var placeholderOrder = []string{"metric", "outcome", "achievement", "feature"}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// achievementLine fills a random template using technologies found in line.
func achievementLine(line string, rng *rand.Rand) string {
	template := achievementTemplates[rng.Intn(len(achievementTemplates))]

	lower := strings.ToLower(line)
	var found []string
	for _, tech := range templateTech {
		if strings.Contains(lower, strings.ToLower(tech)) {
			found = append(found, tech)
		}
	}

	values := map[string]string{
		"project":      "software solution",
		"technologies": "modern technologies",
		"percentage":   strconv.Itoa(rng.Intn(40) + 10),
	}
	if strings.Contains(lower, "website") {
		values["project"] = "responsive web application"
	}
	if len(found) > 0 {
		values["technologies"] = strings.Join(found, ", ")
	}
	for _, key := range placeholderOrder {
		choices := placeholderChoices[key]
		values[key] = choices[rng.Intn(len(choices))]
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(ph string) string {
		if v, ok := values[ph[1:len(ph)-1]]; ok {
			return v
		}
		return ph
	})
}
