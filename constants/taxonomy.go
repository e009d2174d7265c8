package constants

import "strings"

// PackagingStyle buckets the sheet's free-text box_style column into the
// categories the resolver's decision table branches on.
type PackagingStyle string

const (
	PackagingTopBottom     PackagingStyle = "Top-Bottom"
	PackagingSlidingBox    PackagingStyle = "Sliding Box"
	PackagingMagnetic      PackagingStyle = "Magnetic"
	PackagingSlidingHandle PackagingStyle = "Sliding Handle Box"
	PackagingPaperBag      PackagingStyle = "Paper Bag"
	PackagingUnknown       PackagingStyle = ""
)

// PrintCategory buckets printing_type the same way.
type PrintCategory string

const (
	PrintOffset  PrintCategory = "Offset Print"
	PrintFoil    PrintCategory = "Foil Print"
	PrintScreen  PrintCategory = "Screen print"
	PrintNone    PrintCategory = "No print"
	PrintUnknown PrintCategory = ""
)

// CanonicalPackaging maps raw sheet text onto a PackagingStyle. Operators
// type these by hand, so matching is case-insensitive and tolerant of the
// spellings seen in the live sheet.
func CanonicalPackaging(input string) (PackagingStyle, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return PackagingUnknown, false
	}

	synonyms := map[string]PackagingStyle{
		"top-bottom":         PackagingTopBottom,
		"top bottom":         PackagingTopBottom,
		"top & bottom":       PackagingTopBottom,
		"sliding box":        PackagingSlidingBox,
		"sliding":            PackagingSlidingBox,
		"slide box":          PackagingSlidingBox,
		"magnetic":           PackagingMagnetic,
		"magnetic box":       PackagingMagnetic,
		"magnet box":         PackagingMagnetic,
		"sliding handle box": PackagingSlidingHandle,
		"sliding handle":     PackagingSlidingHandle,
		"paper bag":          PackagingPaperBag,
		"paperbag":           PackagingPaperBag,
	}
	if style, ok := synonyms[normalized]; ok {
		return style, true
	}
	return PackagingUnknown, false
}

// CanonicalPrint maps raw printing_type text onto a PrintCategory. The sheet
// uses a bare "No" for unprinted orders.
func CanonicalPrint(input string) (PrintCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return PrintUnknown, false
	}

	synonyms := map[string]PrintCategory{
		"offset print": PrintOffset,
		"offset":       PrintOffset,
		"foil print":   PrintFoil,
		"foil":         PrintFoil,
		"screen print": PrintScreen,
		"screen":       PrintScreen,
		"no":           PrintNone,
		"no print":     PrintNone,
		"none":         PrintNone,
	}
	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}
	return PrintUnknown, false
}

// HasInner reports whether the specification column flags inner packaging.
// The sheet encodes this as the substring "inner" anywhere in the cell.
func HasInner(specification string) bool {
	return strings.Contains(strings.ToLower(specification), "inner")
}

// IsOTD reports whether the order-type column marks an on-time-delivery
// order.
func IsOTD(otdType string) bool {
	return strings.EqualFold(strings.TrimSpace(otdType), "OTD")
}
