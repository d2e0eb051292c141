package domain

// CurrencyLocale is the currency context inferred from a client's IP address.
type CurrencyLocale struct {
	IP                string   `json:"ip"`
	Country           string   `json:"country"`
	DefaultCurrency   string   `json:"defaultCurrency"`
	TravelSuggestions []string `json:"travelCurrencySuggestions"`
}
