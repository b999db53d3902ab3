package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

// Ports have no activation flag; they are the only deletable resource.
var Ports = viewmodel.Config[domain.Port]{
	Resource: PortsName,
	Title:    "Ports",
	Noun:     "port",
	NewDraft: domain.NewPort,
	ID:       func(p domain.Port) domain.ID { return p.ID },
	Label:    func(p domain.Port) string { return p.PortName },
	Columns: []export.Column[domain.Port]{
		{Header: "Port Name", Value: func(p domain.Port) string { return p.PortName }},
		{Header: "Location", Value: func(p domain.Port) string { return p.Location }},
		{Header: "Capacity", Value: func(p domain.Port) string { return p.Capacity.String() }},
		{Header: "Contact Email", Value: func(p domain.Port) string { return p.ContactEmail }},
	},
	Fields: []viewmodel.Field{
		{Name: "port_name", Label: "Port Name", Input: viewmodel.InputText, Required: true},
		{Name: "location", Label: "Location", Input: viewmodel.InputText, Required: true},
		{Name: "capacity", Label: "Capacity", Input: viewmodel.InputNumber, Step: "0.01", Required: true},
		{Name: "contact_email", Label: "Contact Email", Input: viewmodel.InputEmail, Required: true},
	},
	Deletable:   true,
	EmptyNotice: "No ports to export!",
	EmptyList:   "No ports found.",
}
