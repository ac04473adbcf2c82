package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// maxSlugAttempts bounds the suffix probe loop; past it a random suffix
// guarantees termination under concurrent-insert contention.
const maxSlugAttempts = 50

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe, lowercase, hyphenated slug from a display name.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// slugExistsFunc answers whether a candidate slug is already taken.
type slugExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug resolves collisions by appending an incrementing numeric
// suffix (foo, foo-1, foo-2, ...) and falls back to a random suffix once
// maxSlugAttempts candidates are exhausted.
func UniqueSlug(ctx context.Context, name string, exists slugExistsFunc) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = randomSuffix()
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return fmt.Sprintf("%s-%s", base, randomSuffix()), nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%x", b)
}
