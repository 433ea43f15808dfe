package entity

// DefaultCurrencySymbol is used until the user picks another one.
const DefaultCurrencySymbol = "$"

// Account is the single seller record holding plan state and free-tier usage.
type Account struct {
	IsPro          bool   `json:"is_pro"`
	OrdersUsed     int    `json:"orders_used"`
	ExportsUsed    int    `json:"exports_used"`
	CurrencySymbol string `json:"currency_symbol"`
}

// NewAccount returns a fresh free-tier account.
func NewAccount(currencySymbol string) Account {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	return Account{CurrencySymbol: currencySymbol}
}
