// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"slices"
	"strconv"
	"strings"
)

// CompareVersionTags orders tags naturally: each tag is split on '.' and '-',
// segments are compared pairwise, numeric segments compare as integers and
// every non-numeric segment sorts after all numeric ones. A tag that is a
// segment prefix of another sorts first, so 3.9 < 3.10 < 3.11 < 3.11-arm64.
//
// Non-numeric segments are equal to each other under the natural key; the full
// tag string breaks remaining ties so the order is total and reproducible.
func CompareVersionTags(a, b VersionTag) int {
	as, bs := splitTag(a), splitTag(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	if c := len(as) - len(bs); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	return strings.Compare(string(a), string(b))
}

// SortVersionTags sorts tags in place using CompareVersionTags.
func SortVersionTags(tags []VersionTag) {
	slices.SortFunc(tags, CompareVersionTags)
}

// splitTag keeps empty segments ("3..1" has three), which compare as non-numeric.
func splitTag(tag VersionTag) []string {
	return strings.Split(strings.ReplaceAll(string(tag), "-", "."), ".")
}

// compareSegment compares two segments; numeric < non-numeric, non-numerics tie.
func compareSegment(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return 0
}
