package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Maximum lengths, in characters, of free-text fields.
const (
	MaxSummaryLength      = 500
	MaxDescriptionLength  = 1000
	MaxSkillsLength       = 300
	MaxAchievementsLength = 500
)

var (
	phonePattern = regexp.MustCompile(`^[+]?[1-9][\d\s\-()]{7,20}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s\-']{2,50}$`)
	urlPattern   = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
)

// Tags registered on the validator in addition to the built-in ones.
const (
	tagPhone      = "resume_phone"
	tagPersonName = "person_name"
	tagWebURL     = "web_url"
)

func newValidator() *validator.Validate {
	v := validator.New()
	register := func(tag string, re *regexp.Regexp) {
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	register(tagPhone, phonePattern)
	register(tagPersonName, namePattern)
	register(tagWebURL, urlPattern)
	return v
}
