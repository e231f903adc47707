package dto

import (
	"encoding/json"
	"strings"
)

// CurrencyCode is a currency code in a request body. Decoding trims and upper-cases it
// so "usd" and "USD" bind the same; the currency_code rule then checks the result.
type CurrencyCode string

// UnmarshalJSON normalises the decoded code.
func (c *CurrencyCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	return nil
}

func (c CurrencyCode) String() string {
	return string(c)
}
