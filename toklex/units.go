package toklex

// Unit and currency tables for the phrase coalescers. Conversion to the
// SI base is affine: base_value = value*Factor + Offset. Only the
// temperature units carry a nonzero offset.

type unitDef struct {
	Base   string
	Factor float64
	Offset float64
}

var siUnits = map[string]unitDef{
	// mass
	"mg": {"kg", 1e-6, 0},
	"g":  {"kg", 1e-3, 0},
	"gr": {"kg", 1e-3, 0},
	"kg": {"kg", 1, 0},
	"t":  {"kg", 1e3, 0},

	// length
	"mm": {"m", 1e-3, 0},
	"cm": {"m", 1e-2, 0},
	"sm": {"m", 1e-2, 0},
	"m":  {"m", 1, 0},
	"km": {"m", 1e3, 0},

	// area and volume
	"m²":  {"m²", 1, 0},
	"fm":  {"m²", 1, 0},
	"km²": {"m²", 1e6, 0},
	"ha":  {"m²", 1e4, 0},
	"m³":  {"m³", 1, 0},

	// time
	"ms":    {"s", 1e-3, 0},
	"s":     {"s", 1, 0},
	"sek":   {"s", 1, 0},
	"mín":   {"s", 60, 0},
	"min":   {"s", 60, 0},
	"klst":  {"s", 3600, 0},
	"klst.": {"s", 3600, 0},

	// frequency
	"Hz":  {"Hz", 1, 0},
	"kHz": {"Hz", 1e3, 0},
	"MHz": {"Hz", 1e6, 0},
	"GHz": {"Hz", 1e9, 0},

	// power and energy
	"W":    {"W", 1, 0},
	"kW":   {"W", 1e3, 0},
	"MW":   {"W", 1e6, 0},
	"GW":   {"W", 1e9, 0},
	"Wst":  {"J", 3600, 0},
	"Wh":   {"J", 3600, 0},
	"kWst": {"J", 3.6e6, 0},
	"kWh":  {"J", 3.6e6, 0},
	"MWst": {"J", 3.6e9, 0},
	"MWh":  {"J", 3.6e9, 0},
	"GWst": {"J", 3.6e12, 0},
	"GWh":  {"J", 3.6e12, 0},
	"J":    {"J", 1, 0},
	"kJ":   {"J", 1e3, 0},

	// pressure
	"Pa":  {"Pa", 1, 0},
	"hPa": {"Pa", 100, 0},
	"kPa": {"Pa", 1e3, 0},

	// volume (liters)
	"ml":  {"l", 1e-3, 0},
	"dl":  {"l", 0.1, 0},
	"l":   {"l", 1, 0},
	"ltr": {"l", 1, 0},

	// temperature; °C and °F convert affinely into kelvin
	"K":  {"K", 1, 0},
	"°C": {"K", 1, 273.15},
	"°F": {"K", 5.0 / 9.0, 255.3722222222222},

	// bare degree sign; pairs with a following C or F
	"°": {"°", 1, 0},
}

func lookupUnit(s string) (unitDef, bool) {
	u, ok := siUnits[s]
	return u, ok
}

func isUnitSurface(s string) bool {
	_, ok := siUnits[s]
	return ok
}

// currencySymbols maps symbol tokens to ISO 4217 codes.
var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

// currencyWords maps currency abbreviations and word forms to ISO codes.
var currencyWords = map[string]string{
	"kr.":      "ISK",
	"kr":       "ISK",
	"ISK":      "ISK",
	"króna":    "ISK",
	"krónu":    "ISK",
	"krónur":   "ISK",
	"krónum":   "ISK",
	"króna.":   "ISK",
	"USD":      "USD",
	"dollari":  "USD",
	"dollarar": "USD",
	"dollara":  "USD",
	"dollurum": "USD",
	"dalir":    "USD",
	"dali":     "USD",
	"EUR":      "EUR",
	"evra":     "EUR",
	"evru":     "EUR",
	"evrur":    "EUR",
	"evrum":    "EUR",
	"GBP":      "GBP",
	"pund":     "GBP",
	"pundum":   "GBP",
}

// amountMultipliers maps magnitude words to their factor.
var amountMultipliers = map[string]float64{
	"þús.":       1e3,
	"þúsund":     1e3,
	"þúsundir":   1e3,
	"millj.":     1e6,
	"milljón":    1e6,
	"milljónir":  1e6,
	"milljóna":   1e6,
	"mrð.":       1e9,
	"ma.":        1e9,
	"milljarður": 1e9,
	"milljarðar": 1e9,
	"milljarða":  1e9,
}

// percentWords are the spelled-out percentage words merged with a number
// under the CoalescePercent option.
var percentWords = map[string]bool{
	"prósent":        true,
	"prósenta":       true,
	"prósentur":      true,
	"prósentustig":   true,
	"prósentustigum": true,
	"hundraðshlutar": true,
	"hundraðshluta":  true,
}
