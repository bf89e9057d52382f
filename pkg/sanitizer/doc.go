// Package sanitizer cleans user input around phone validation.
//
// NormalizeRegion prepares country codes for lookup. MaskPhone hides all but
// the last four digits before a number reaches the logs.
//
//	region := sanitizer.NormalizeRegion(" gb ") // "GB"
//	masked := sanitizer.MaskPhone("+1 650-253-0000") // "*******0000"
//
// The package is stateless and depends only on the standard library.
package sanitizer
