package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

var Ships = viewmodel.Config[domain.Ship]{
	Resource: ShipsName,
	Title:    "Ships",
	Noun:     "ship",
	NewDraft: domain.NewShip,
	ID:       func(s domain.Ship) domain.ID { return s.ID },
	Label:    func(s domain.Ship) string { return s.Name },
	Active: &viewmodel.ActiveField[domain.Ship]{
		Get: func(s domain.Ship) bool { return s.IsActive },
		Set: func(s domain.Ship, v bool) domain.Ship { s.IsActive = v; return s },
	},
	Filter: &viewmodel.Filter[domain.Ship]{
		Field:   "status",
		Label:   "Status",
		Options: enumOptions(domain.ShipStatuses),
		Value:   func(s domain.Ship) string { return string(s.Status) },
	},
	Columns: []export.Column[domain.Ship]{
		{Header: "Name", Value: func(s domain.Ship) string { return s.Name }},
		{Header: "Registration Number", Value: func(s domain.Ship) string { return s.RegistrationNumber }},
		{Header: "Capacity (tonnes)", Value: func(s domain.Ship) string { return s.CapacityInTonnes.String() }},
		{Header: "Type", Value: func(s domain.Ship) string { return string(s.Type) }},
		{Header: "Status", Value: func(s domain.Ship) string { return string(s.Status) }},
		{Header: "Active", Value: func(s domain.Ship) string { return export.YesNo(s.IsActive) }},
	},
	Fields: []viewmodel.Field{
		{Name: "name", Label: "Ship Name", Input: viewmodel.InputText, Required: true},
		{Name: "registration_number", Label: "Registration Number", Input: viewmodel.InputText, Required: true},
		{Name: "capacity_in_tonnes", Label: "Capacity in Tonnes", Input: viewmodel.InputNumber, Step: "0.01", Required: true},
		{Name: "type", Label: "Type", Input: viewmodel.InputSelect, Options: enumOptions(domain.ShipTypes), Required: true},
		{Name: "status", Label: "Status", Input: viewmodel.InputSelect, Options: enumOptions(domain.ShipStatuses), Required: true},
		{Name: "is_active", Label: "Active", Input: viewmodel.InputCheckbox},
	},
	EmptyNotice: "No ships to export!",
	EmptyList:   "No ships found.",
}
