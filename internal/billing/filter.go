package billing

import (
	"strings"

	apperrors "billbook/internal/errors"
	"billbook/internal/models"
)

// Filter narrows records to those whose name starts with namePrefix
// (case-insensitive) and whose date contains dateSubstring. An empty
// predicate matches everything. Relative order is preserved.
//
// Two outcomes are reported through informational errors, and in both cases
// the returned slice is the unfiltered input:
//   - ErrNoFilterApplied when both predicates are empty
//   - ErrNoMatch when nothing matched
func Filter(records []models.Record, namePrefix, dateSubstring string) ([]models.Record, error) {
	namePrefix = strings.ToLower(strings.TrimSpace(namePrefix))
	dateSubstring = strings.TrimSpace(dateSubstring)

	if namePrefix == "" && dateSubstring == "" {
		return records, apperrors.ErrNoFilterApplied
	}

	filtered := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !strings.HasPrefix(strings.ToLower(r.Name), namePrefix) {
			continue
		}
		if !strings.Contains(r.Date, dateSubstring) {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		return records, apperrors.ErrNoMatch
	}
	return filtered, nil
}

// SuggestNames returns the distinct trimmed record names that start with
// typedPrefix, ignoring case, in first-seen order. Nothing is suggested
// until the user has typed something.
func SuggestNames(records []models.Record, typedPrefix string) []string {
	prefix := strings.ToLower(typedPrefix)
	if prefix == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	names := []string{}
	for _, r := range records {
		if !strings.HasPrefix(strings.ToLower(r.Name), prefix) {
			continue
		}
		name := strings.TrimSpace(r.Name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
