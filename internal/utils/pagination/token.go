package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/contractor_backoffice/internal/apperrors"
)

const fieldSeparator = "."

// EncodeMultiFieldToken creates an opaque token from any number of string fields.
// Each field is encoded on its own so separators inside values survive the round trip.
func EncodeMultiFieldToken(fields ...string) string {
	encoded := make([]string, len(fields))
	for i, f := range fields {
		encoded[i] = base64.RawURLEncoding.EncodeToString([]byte(f))
	}
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(encoded, fieldSeparator)))
}

// DecodeMultiFieldToken decodes a token into exactly want fields.
func DecodeMultiFieldToken(token string, want int) ([]string, error) {
	outer, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", apperrors.ErrValidation)
	}
	parts := strings.Split(string(outer), fieldSeparator)
	if len(parts) != want {
		return nil, fmt.Errorf("invalid pagination token format (expected %d fields, got %d): %w", want, len(parts), apperrors.ErrValidation)
	}
	fields := make([]string, len(parts))
	for i, p := range parts {
		raw, err := base64.RawURLEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pagination token format (field %d): %w", i, apperrors.ErrValidation)
		}
		fields[i] = string(raw)
	}
	return fields, nil
}

// Page returns the items that sort strictly after the token's key, up to limit, and the token
// for the following page (nil on the last page). items must already be sorted by key.
func Page[T any](items []T, limit int, nextToken *string, key func(T) []string) ([]T, *string, error) {
	if len(items) == 0 {
		return items, nil, nil
	}
	if limit <= 0 {
		limit = len(items)
	}

	start := 0
	if nextToken != nil && *nextToken != "" {
		after, err := DecodeMultiFieldToken(*nextToken, len(key(items[0])))
		if err != nil {
			return nil, nil, err
		}
		start = len(items)
		for i, item := range items {
			if compareKeys(key(item), after) > 0 {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(items))
	page := items[start:end]
	if end >= len(items) || len(page) == 0 {
		return page, nil, nil
	}
	token := EncodeMultiFieldToken(key(page[len(page)-1])...)
	return page, &token, nil
}

func compareKeys(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
