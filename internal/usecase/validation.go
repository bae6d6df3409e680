package usecase

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Field validation is declarative: each form is a list of fields, each
// field an ordered list of rules. The first rule a trimmed value violates
// produces that field's message; later rules are not evaluated.

type rule struct {
	check   func(value string) bool
	message string
}

type fieldSchema struct {
	field string
	rules []rule
}

var leadSchema = []fieldSchema{
	{"name", []rule{
		{nonEmpty, "Name is required"},
	}},
	{"email", []rule{
		{validEmail, "Invalid email format"},
	}},
	{"problem_text", []rule{
		{minLength(30), "Problem statement must be at least 30 characters"},
	}},
	// company and website are optional with no format constraint
}

var loginSchema = []fieldSchema{
	{"email", []rule{
		{validEmail, "Invalid email format"},
	}},
	{"password", []rule{
		{nonEmpty, "Password is required"},
	}},
}

func runSchema(schema []fieldSchema, values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, fs := range schema {
		for _, r := range fs.rules {
			if !r.check(values[fs.field]) {
				errs[fs.field] = r.message
				break
			}
		}
	}
	return errs
}

// ValidateCaptureLeadInput trims every field and checks the lead schema.
// It returns the normalized input and a field→message map, empty when the
// submission is acceptable.
func ValidateCaptureLeadInput(input CaptureLeadInput) (CaptureLeadInput, map[string]string) {
	normalized := CaptureLeadInput{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Company:     strings.TrimSpace(input.Company),
		Website:     strings.TrimSpace(input.Website),
		ProblemText: strings.TrimSpace(input.ProblemText),
	}

	errs := runSchema(leadSchema, map[string]string{
		"name":         normalized.Name,
		"email":        normalized.Email,
		"company":      normalized.Company,
		"website":      normalized.Website,
		"problem_text": normalized.ProblemText,
	})

	return normalized, errs
}

func ValidateLoginInput(input LoginInput) (LoginInput, map[string]string) {
	normalized := LoginInput{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	}

	errs := runSchema(loginSchema, map[string]string{
		"email":    normalized.Email,
		"password": normalized.Password,
	})

	return normalized, errs
}

func nonEmpty(value string) bool {
	return value != ""
}

func validEmail(value string) bool {
	if value == "" {
		return false
	}
	_, err := mail.ParseAddress(value)
	return err == nil
}

func minLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}
