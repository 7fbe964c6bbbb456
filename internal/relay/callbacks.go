// ABOUTME: Callback-data constants shared by menu rendering and update decoding
// ABOUTME: Values are wire-compatible with the original deployment's buttons

package relay

// Callback data carried by inline keyboard buttons. The relay encodes these
// when rendering menus; the Telegram bridge decodes them back into flow
// events.
const (
	CallbackCryptoToFiat = "crypto_to_fiat"
	CallbackFiatToCrypto = "fiat_to_crypto"
	CallbackPaid         = "paid"
	CallbackAdminCrypto  = "admin_crypto"
	CallbackAdminFiat    = "admin_fiat"

	PrefixFrom          = "from_"
	PrefixTo            = "to_"
	PrefixNet           = "net_"
	PrefixCopy          = "copy_"
	PrefixSendDetails   = "send_details_"
	PrefixAdminCurrency = "admin_currency_"
	PrefixAdminNet      = "admin_net_"
)
