package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

var Shipments = viewmodel.Config[domain.Shipment]{
	Resource: ShipmentsName,
	Title:    "Shipments",
	Noun:     "shipment",
	NewDraft: domain.NewShipment,
	ID:       func(s domain.Shipment) domain.ID { return s.ID },
	Label: func(s domain.Shipment) string {
		return "Shipment #" + s.ID.String()
	},
	Active: &viewmodel.ActiveField[domain.Shipment]{
		Get: func(s domain.Shipment) bool { return s.IsActive },
		Set: func(s domain.Shipment, v bool) domain.Shipment { s.IsActive = v; return s },
	},
	Filter: &viewmodel.Filter[domain.Shipment]{
		Field:   "status",
		Label:   "Status",
		Options: enumOptions(domain.ShipmentStatuses),
		Value:   func(s domain.Shipment) string { return string(s.Status) },
	},
	Columns: []export.Column[domain.Shipment]{
		{Header: "Cargo", Value: func(s domain.Shipment) string { return export.OrNA(s.Cargo.String()) }},
		{Header: "Ship", Value: func(s domain.Shipment) string { return export.OrNA(s.Ship.String()) }},
		{Header: "Origin", Value: func(s domain.Shipment) string { return export.OrNA(s.OriginPort.String()) }},
		{Header: "Destination", Value: func(s domain.Shipment) string { return export.OrNA(s.DestinationPort.String()) }},
		{Header: "Departure", Value: func(s domain.Shipment) string { return s.DepartureDate.String() }},
		{Header: "ETA", Value: func(s domain.Shipment) string { return s.ArrivalEstimate.String() }},
		{Header: "Arrival", Value: func(s domain.Shipment) string { return export.OrNA(s.ActualArrivalDate.String()) }},
		{Header: "Status", Value: func(s domain.Shipment) string { return string(s.Status) }},
		{Header: "Active", Value: func(s domain.Shipment) string { return export.YesNo(s.IsActive) }},
	},
	Fields: []viewmodel.Field{
		{Name: "cargo", Label: "Cargo", Input: viewmodel.InputRef, Ref: CargoName, Required: true},
		{Name: "ship", Label: "Ship", Input: viewmodel.InputRef, Ref: ShipsName, Required: true},
		{Name: "origin_port", Label: "Origin Port", Input: viewmodel.InputRef, Ref: PortsName, Required: true},
		{Name: "destination_port", Label: "Destination Port", Input: viewmodel.InputRef, Ref: PortsName, Required: true},
		{Name: "departure_date", Label: "Departure Date", Input: viewmodel.InputDate, Required: true},
		{Name: "arrival_estimate", Label: "Estimated Arrival", Input: viewmodel.InputDate, Required: true},
		{Name: "actual_arrival_date", Label: "Actual Arrival", Input: viewmodel.InputDate},
		{Name: "status", Label: "Status", Input: viewmodel.InputSelect, Options: enumOptions(domain.ShipmentStatuses), Required: true},
		{Name: "is_active", Label: "Active", Input: viewmodel.InputCheckbox},
	},
	EmptyNotice: "No shipments to export!",
	EmptyList:   "No shipments found.",
}
