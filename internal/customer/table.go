package customer

// accountSuffixes are the scheme suffixes appended to customer codes in the
// time-tracking system. Precedence order matters: only the first matching
// suffix is stripped.
var accountSuffixes = []string{"BILL", "CSM", "TECH", "SALES", "NONBILL"}

// customerNames maps stripped account codes to human-readable customer
// names. Loaded once; never mutated at runtime.
var customerNames = map[string]string{
	"RELATECARE": "RelateCare",
	"CENTENE":    "Centene",
	"HEALTHBRIDGE": "HealthBridge",
	"MERIDIANCARE": "Meridian Care",
	"NOVAHEALTH":   "Nova Health",
	"PINNACLE":     "Pinnacle Group",
	"CLEARWATER":   "Clearwater Systems",
	"ATLASMED":     "Atlas Medical",
	"BLUEPEAK":     "BluePeak",
	"CORNERSTONE":  "Cornerstone Health",
	"EVERGREEN":    "Evergreen Partners",
	"HARBORVIEW":   "Harborview",
	"LUMINA":       "Lumina Health",
	"REDSTONE":     "Redstone Analytics",
	"SUMMITCARE":   "Summit Care",
	"TRUENORTH":    "TrueNorth",
	"VANTAGE":      "Vantage Health",
	"WESTBROOK":    "Westbrook Medical",
	"INTERNAL":     "Internal",
	"TIMEOFF":      "Time Off",
}
