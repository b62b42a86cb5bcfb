package dataset

import "regexp"

// trailingUnit matches the LSOA unit suffix: optional whitespace, digits,
// optional uppercase letters, anchored at the end ("Leeds 001A" -> " 001A").
var trailingUnit = regexp.MustCompile(`\s*\d+[A-Z]*$`)

// NormalizeLocation strips the trailing unit suffix from a fine-grained area
// name, yielding the coarser common location ("Leeds 001A" -> "Leeds").
// Names without a suffix are returned unchanged. A name consisting only of
// the suffix normalizes to the empty string; callers must tolerate that.
func NormalizeLocation(areaName string) string {
	return trailingUnit.ReplaceAllString(areaName, "")
}
