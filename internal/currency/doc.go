// Package currency holds the static catalogs of currencies the exchanger
// supports, loaded once at startup and never mutated.
package currency
