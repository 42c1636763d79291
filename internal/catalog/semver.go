package catalog

import (
	"strconv"
	"strings"
)

// compareVersions compares two dotted version strings leniently.
// Returns -1 if v1 < v2, 0 if equal, 1 if v1 > v2. Build metadata is
// ignored; a pre-release sorts before its release (1.9.0-rc1 < 1.9.0).
// Non-numeric components compare as zero, which is good enough for the
// compatibility matrix.
func compareVersions(v1, v2 string) int {
	nums1, pre1 := parseVersionParts(v1)
	nums2, pre2 := parseVersionParts(v2)

	if cmp := compareIntSlices(nums1, nums2); cmp != 0 {
		return cmp
	}

	// Equal numeric parts: release beats pre-release.
	switch {
	case pre1 == "" && pre2 != "":
		return 1
	case pre1 != "" && pre2 == "":
		return -1
	case pre1 < pre2:
		return -1
	case pre1 > pre2:
		return 1
	}
	return 0
}

// parseVersionParts splits a version into numeric dot components and an
// optional pre-release tag.
func parseVersionParts(v string) ([]int, string) {
	// Drop build metadata (+...)
	if idx := strings.Index(v, "+"); idx >= 0 {
		v = v[:idx]
	}

	pre := ""
	if idx := strings.Index(v, "-"); idx >= 0 {
		pre = v[idx+1:]
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		nums[i] = n
	}
	return nums, pre
}

// compareIntSlices compares two slices of integers, treating missing
// trailing components as zero (1.9 == 1.9.0).
func compareIntSlices(a, b []int) int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	for i := 0; i < maxLen; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}

		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}
