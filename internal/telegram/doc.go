// Package telegram is the transport boundary of the exchanger. It owns all
// Telegram Bot API types: the long-polling loop, callback-data decoding into
// flow events, and the Messenger the relay writes through. Nothing outside
// this package imports tgbotapi.
package telegram
