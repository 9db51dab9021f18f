package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"nexus.regintel.org/internal/models"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const (
	MaxIDLength    = 100
	MaxQueryLength = 200
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > MaxIDLength {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateQuery validates search query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > MaxQueryLength {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// ValidateUrgency accepts an empty value or one of High, Medium and Low.
func ValidateUrgency(urgency string) error {
	if urgency == "" || models.ValidUrgency(urgency) {
		return nil
	}
	return errors.New("urgency must be one of High, Medium, Low")
}

// StripTags removes HTML tags and leaves everything else, whitespace
// included, as given.
func StripTags(input string) string {
	return htmlTagPattern.ReplaceAllString(input, "")
}

// SanitizeInput strips tags and surrounding whitespace from free text such as
// titles and comments.
func SanitizeInput(input string) string {
	return strings.TrimSpace(StripTags(input))
}

// ValidateAndSanitizeQuery validates a search query and strips its tags. The
// query is matched as a plain substring, so its spaces are kept.
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return StripTags(query), nil
}

// ValidateFeedSearchParams checks the feed search filters and returns the
// problems keyed by parameter name. A clean set returns an empty map.
func ValidateFeedSearchParams(query, urgency, dateFrom, dateTo string, filters map[string]string) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateQuery(query); err != nil {
		fieldErrors["q"] = append(fieldErrors["q"], err.Error())
	}
	if err := ValidateUrgency(urgency); err != nil {
		fieldErrors["urgency"] = append(fieldErrors["urgency"], err.Error())
	}
	if err := ValidateDate(dateFrom); err != nil {
		fieldErrors["dateFrom"] = append(fieldErrors["dateFrom"], err.Error())
	}
	if err := ValidateDate(dateTo); err != nil {
		fieldErrors["dateTo"] = append(fieldErrors["dateTo"], err.Error())
	}
	if dateFrom != "" && dateTo != "" && len(fieldErrors["dateFrom"]) == 0 && len(fieldErrors["dateTo"]) == 0 && dateFrom > dateTo {
		fieldErrors["dateFrom"] = append(fieldErrors["dateFrom"], "dateFrom must not be after dateTo")
	}

	// free-text filters share the query rules
	for name, value := range filters {
		if err := ValidateQuery(value); err != nil {
			fieldErrors[name] = append(fieldErrors[name], err.Error())
		}
	}

	return fieldErrors
}
