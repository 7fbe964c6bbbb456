// Package exchange implements the conversion arithmetic of the exchanger:
// the static USD rate table, the pairwise rate, directional conversion and
// amount parsing.
//
// Rates are placeholders for a live feed. Unknown currency codes silently
// fall back to a USD rate of 1; conversions never fail.
package exchange
