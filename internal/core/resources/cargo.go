package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

var Cargo = viewmodel.Config[domain.Cargo]{
	Resource: CargoName,
	Title:    "Cargo",
	Noun:     "cargo item",
	NewDraft: domain.NewCargo,
	ID:       func(c domain.Cargo) domain.ID { return c.ID },
	Label:    func(c domain.Cargo) string { return c.Description },
	Active: &viewmodel.ActiveField[domain.Cargo]{
		Get: func(c domain.Cargo) bool { return c.IsActive },
		Set: func(c domain.Cargo, v bool) domain.Cargo { c.IsActive = v; return c },
	},
	Filter: &viewmodel.Filter[domain.Cargo]{
		Field:   "cargo_type",
		Label:   "Type",
		Options: enumOptions(domain.CargoTypes),
		Value:   func(c domain.Cargo) string { return string(c.CargoType) },
	},
	Columns: []export.Column[domain.Cargo]{
		{Header: "Description", Value: func(c domain.Cargo) string { return c.Description }},
		{Header: "Weight", Value: func(c domain.Cargo) string { return c.Weight.String() }},
		{Header: "Volume", Value: func(c domain.Cargo) string { return export.OrNA(c.Volume.String()) }},
		{Header: "Client", Value: func(c domain.Cargo) string { return export.OrNA(c.Client.String()) }},
		{Header: "Type", Value: func(c domain.Cargo) string { return string(c.CargoType) }},
		{Header: "Active", Value: func(c domain.Cargo) string { return export.YesNo(c.IsActive) }},
	},
	Fields: []viewmodel.Field{
		{Name: "description", Label: "Description", Input: viewmodel.InputTextarea, Required: true},
		{Name: "weight", Label: "Weight (kg)", Input: viewmodel.InputNumber, Step: "0.01", Required: true},
		{Name: "volume", Label: "Volume (m³)", Input: viewmodel.InputNumber, Step: "0.01"},
		{Name: "client", Label: "Client", Input: viewmodel.InputRef, Ref: ClientsName},
		{Name: "cargo_type", Label: "Cargo Type", Input: viewmodel.InputSelect, Options: enumOptions(domain.CargoTypes), Required: true},
		{Name: "is_active", Label: "Active", Input: viewmodel.InputCheckbox},
	},
	EmptyNotice: "No cargo items to export!",
	EmptyList:   "No cargo found.",
}
