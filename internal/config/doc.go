// Package config loads the bot's TOML configuration: the Telegram token,
// the operator identity, logging options and optional rate overrides.
package config
