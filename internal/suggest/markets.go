package suggest

// Market pairs a display name with the suggest endpoint's gl country code.
type Market struct {
	Name string
	Code string
}

// Markets lists the selectable markets in display order.
var Markets = []Market{
	{"United States", "US"},
	{"India", "IN"},
	{"United Kingdom", "GB"},
	{"Australia", "AU"},
	{"Canada", "CA"},
	{"Germany", "DE"},
	{"France", "FR"},
	{"Spain", "ES"},
	{"Italy", "IT"},
	{"Brazil", "BR"},
}

// MarketCode returns code if it names a known market, otherwise fallback.
func MarketCode(code, fallback string) string {
	for _, m := range Markets {
		if m.Code == code {
			return m.Code
		}
	}
	return fallback
}
