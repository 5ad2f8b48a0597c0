package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// SortClause builds an ORDER BY expression from untrusted input. Both the
// field and the direction are validated, so the result is safe to
// interpolate into a query.
func SortClause(sortField string, allowedFields map[string]bool, defaultField, orderDir string) string {
	return ValidateSortField(sortField, allowedFields, defaultField) + " " + ValidateSortOrder(orderDir)
}

// JobSortFields contains allowed sort fields for job listings
var JobSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"posted_at":  true,
	"title":      true,
	"location":   true,
	"salary":     true,
}

// ApplicationSortFields contains allowed sort fields for applications
var ApplicationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"applied_at": true,
	"status":     true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"full_name":     true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}
