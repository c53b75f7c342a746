package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateSection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		header    string
		wantBody  string
		wantFound bool
	}{
		{
			name:      "body up to next heading",
			text:      "EXPERIENCE\nAcme - Engineer\n2020 - 2021\nEDUCATION\nMIT",
			header:    HeaderExperience,
			wantBody:  "Acme - Engineer\n2020 - 2021",
			wantFound: true,
		},
		{
			name:      "body to end of text",
			text:      "intro\nEDUCATION\nMIT - 2019\n",
			header:    HeaderEducation,
			wantBody:  "MIT - 2019",
			wantFound: true,
		},
		{
			name:      "case-insensitive header with colon",
			text:      "Experience:\nAcme - Engineer\n",
			header:    HeaderExperience,
			wantBody:  "Acme - Engineer",
			wantFound: true,
		},
		{
			name:      "qualified heading",
			text:      "WORK EXPERIENCE\nAcme - Engineer\nSKILLS\nGo",
			header:    HeaderExperience,
			wantBody:  "Acme - Engineer",
			wantFound: true,
		},
		{
			name:      "adjacent headers give empty body",
			text:      "EXPERIENCE\n\nEDUCATION\nMIT",
			header:    HeaderExperience,
			wantBody:  "",
			wantFound: true,
		},
		{
			name:      "missing header",
			text:      "Jane Doe\nSKILLS\nGo",
			header:    HeaderProjects,
			wantFound: false,
		},
		{
			name:      "CRLF line endings",
			text:      "SKILLS\r\nTechnical: Go\r\nPROJECTS\r\nX",
			header:    HeaderSkills,
			wantBody:  "Technical: Go",
			wantFound: true,
		},
		{
			name:      "entry lines in caps do not end the section",
			text:      "CERTIFICATIONS\nCKA — CNCF\n2022\nAWS SAA - AMAZON\n",
			header:    HeaderCertifications,
			wantBody:  "CKA — CNCF\n2022\nAWS SAA - AMAZON",
			wantFound: true,
		},
		{
			name:      "acronym institution stays in the body",
			text:      "EDUCATION\nBachelor of Science - Computer Science\nMIT\n2016\n\nSKILLS\nTechnical: Go",
			header:    HeaderEducation,
			wantBody:  "Bachelor of Science - Computer Science\nMIT\n2016",
			wantFound: true,
		},
		{
			name:      "multi-word caps line after an entry header stays in the body",
			text:      "EDUCATION\nMaster of Science - Physics\nNEW YORK UNIVERSITY\n2018",
			header:    HeaderEducation,
			wantBody:  "Master of Science - Physics\nNEW YORK UNIVERSITY\n2018",
			wantFound: true,
		},
		{
			name:      "title-case header ends the section",
			text:      "Experience\nAcme - Engineer\nJanuary 2020 - Present\nEducation\nMIT - 2010",
			header:    HeaderExperience,
			wantBody:  "Acme - Engineer\nJanuary 2020 - Present",
			wantFound: true,
		},
		{
			name:      "unknown multi-word heading ends the section",
			text:      "SKILLS\nTechnical: Go\nVOLUNTEER WORK\nFood bank",
			header:    HeaderSkills,
			wantBody:  "Technical: Go",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, found := LocateSection(tt.text, tt.header)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestIsHeadingLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"EDUCATION", true},
		{"PROFESSIONAL SUMMARY:", true},
		{"  SKILLS  ", true},
		{"Education", false},
		{"2023", false},
		{"AWS", true},
		{"IBM - CONSULTANT", false},
		{"GPA: 3.9", false},
		{"A B", false},
		{"THIS LINE HAS FAR TOO MANY WORDS", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeadingLine(tt.line))
		})
	}
}

func TestEndsSection(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"known header", []string{"Go", "EDUCATION"}, true},
		{"known header title case", []string{"Go", "Certifications:"}, true},
		{"qualified known header", []string{"Go", "TECHNICAL PROJECTS"}, true},
		{"other known header", []string{"Go", "Awards"}, true},
		{"single caps word", []string{"Acme - Engineer", "IBM"}, false},
		{"caps words after entry header", []string{"BSc - Math", "UC BERKELEY"}, false},
		{"caps words after degree line", []string{"Bachelor of Arts", "UC BERKELEY"}, false},
		{"caps words after plain line", []string{"Built things", "WORK HISTORY"}, true},
		{"plain line", []string{"Go", "Built internal tooling"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endsSection(tt.lines, len(tt.lines)-1))
		})
	}
}
