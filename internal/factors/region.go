package factors

import "strings"

// Regional variant suffixes used by factor keys such as
// "desalinated_water_uae" and "landfill_ksa".
const (
	suffixUAE = "uae"
	suffixKSA = "ksa"
)

// regionSuffix maps a user-supplied region name to the variant suffix its
// factors are filed under. Emirates resolve to UAE variants, Saudi
// provinces to KSA variants. Unknown regions return "".
func regionSuffix(region string) string {
	switch strings.ToLower(strings.TrimSpace(region)) {
	case "uae", "united arab emirates", "dubai", "abu dhabi", "sharjah",
		"ajman", "fujairah", "ras al khaimah", "umm al quwain",
		"northern emirates":
		return suffixUAE
	case "ksa", "saudi arabia", "riyadh", "jeddah", "dammam", "mecca",
		"medina", "neom":
		return suffixKSA
	default:
		return ""
	}
}
