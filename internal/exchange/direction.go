// ABOUTME: Exchange direction enum shared by sessions, flows and conversion
// ABOUTME: Zero value means the direction has not been chosen yet

package exchange

// Direction is the side of the exchange the user requested.
type Direction int

const (
	// DirectionUnset is the zero value for a session with no direction chosen.
	DirectionUnset Direction = iota
	// CryptoToFiat sells crypto for fiat.
	CryptoToFiat
	// FiatToCrypto buys crypto with fiat.
	FiatToCrypto
)

func (d Direction) String() string {
	switch d {
	case CryptoToFiat:
		return "crypto_to_fiat"
	case FiatToCrypto:
		return "fiat_to_crypto"
	default:
		return "unset"
	}
}
