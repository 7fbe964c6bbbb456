// ABOUTME: Static catalogs of supported crypto and fiat currencies
// ABOUTME: Each crypto entry lists the networks it can be transferred on

package currency

// Descriptor describes one supported currency. Networks is empty for fiat
// currencies and for cryptos that need no network choice.
type Descriptor struct {
	Code     string
	Name     string
	Networks []string
}

// HasNetworks reports whether the currency requires a network selection.
func (d Descriptor) HasNetworks() bool {
	return len(d.Networks) > 0
}

var cryptos = []Descriptor{
	{Code: "BTC", Name: "₿ Bitcoin", Networks: []string{"Bitcoin"}},
	{Code: "ETH", Name: "₿ Ethereum", Networks: []string{"Ethereum", "BSC"}},
	{Code: "USDT", Name: "₿ Tether", Networks: []string{"ERC20", "TRC20", "BEP20"}},
	{Code: "TRX", Name: "₿ TRON", Networks: []string{"TRC20"}},
}

var fiats = []Descriptor{
	{Code: "RUB", Name: "💵 Рубли"},
	{Code: "USD", Name: "💵 Доллары"},
	{Code: "EUR", Name: "💵 Евро"},
}

// Cryptos returns the supported cryptocurrencies in menu order.
// Callers must not modify the returned slice.
func Cryptos() []Descriptor {
	return cryptos
}

// Fiats returns the supported fiat currencies in menu order.
// Callers must not modify the returned slice.
func Fiats() []Descriptor {
	return fiats
}

// Find looks up a currency by code across both catalogs.
func Find(code string) (Descriptor, bool) {
	for _, d := range cryptos {
		if d.Code == code {
			return d, true
		}
	}
	for _, d := range fiats {
		if d.Code == code {
			return d, true
		}
	}
	return Descriptor{}, false
}
