// Package resources configures the view model for each record type the
// console manages.
package resources

import (
	"strings"

	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

// Collection names, also the URL segments of the console and the API.
const (
	ShipsName     = "ships"
	CrewName      = "crew"
	PortsName     = "ports"
	ClientsName   = "clients"
	CargoName     = "cargo"
	ShipmentsName = "shipments"
)

// enumOptions builds select options from an enum, labelling each value in
// title case ("in_transit" → "In Transit").
func enumOptions[E ~string](values []E) []viewmodel.Option {
	opts := make([]viewmodel.Option, len(values))
	for i, v := range values {
		opts[i] = viewmodel.Option{Value: string(v), Label: Humanize(string(v))}
	}
	return opts
}

// Humanize title-cases an enum value.
func Humanize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
