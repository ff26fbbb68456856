package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const DefaultSlugMaxLen = 120

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify lowercases s, strips diacritics (é -> e), turns every other run of
// non-alphanumerics into a single "-" and caps the length. An empty result
// becomes "test".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	if s == "" {
		s = "test"
	}
	return s
}

// SlugExistsFunc reports whether a candidate slug is already taken.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// EnsureUniqueSlug returns base if it is free, otherwise base-2, base-3, ...
// trimmed so the suffix still fits in maxLen.
func EnsureUniqueSlug(ctx context.Context, base string, maxLen int, exists SlugExistsFunc) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	candidate := base
	for i := 2; i < 1000; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = trimForSuffix(base, suffix, maxLen) + suffix
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}

func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	if len(base) > keep {
		base = base[:keep]
	}
	base = strings.Trim(base, "-")
	if base == "" {
		base = "x"
	}
	return base
}
