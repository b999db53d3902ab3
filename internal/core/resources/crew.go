package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

var crewRoles = func() []viewmodel.Option {
	opts := make([]viewmodel.Option, len(domain.CrewRoles))
	for i, r := range domain.CrewRoles {
		opts[i] = viewmodel.Option{Value: string(r), Label: string(r)}
	}
	return opts
}()

var Crew = viewmodel.Config[domain.CrewMember]{
	Resource: CrewName,
	Title:    "Crew",
	Noun:     "crew member",
	NewDraft: domain.NewCrewMember,
	ID:       func(m domain.CrewMember) domain.ID { return m.ID },
	Label:    func(m domain.CrewMember) string { return m.FirstName + " " + m.LastName },
	Active: &viewmodel.ActiveField[domain.CrewMember]{
		Get: func(m domain.CrewMember) bool { return m.IsActive },
		Set: func(m domain.CrewMember, v bool) domain.CrewMember { m.IsActive = v; return m },
	},
	Filter: &viewmodel.Filter[domain.CrewMember]{
		Field:   "role",
		Label:   "Role",
		Options: crewRoles,
		Value:   func(m domain.CrewMember) string { return string(m.Role) },
	},
	Columns: []export.Column[domain.CrewMember]{
		{Header: "First Name", Value: func(m domain.CrewMember) string { return m.FirstName }},
		{Header: "Last Name", Value: func(m domain.CrewMember) string { return m.LastName }},
		{Header: "Role", Value: func(m domain.CrewMember) string { return string(m.Role) }},
		{Header: "Phone", Value: func(m domain.CrewMember) string { return m.PhoneNumber }},
		{Header: "Nationality", Value: func(m domain.CrewMember) string { return export.OrNA(m.Nationality) }},
		{Header: "Ship", Value: func(m domain.CrewMember) string { return export.OrNA(m.Ship.String()) }},
		{Header: "Active", Value: func(m domain.CrewMember) string { return export.YesNo(m.IsActive) }},
	},
	Fields: []viewmodel.Field{
		{Name: "first_name", Label: "First Name", Input: viewmodel.InputText, Required: true},
		{Name: "last_name", Label: "Last Name", Input: viewmodel.InputText, Required: true},
		{Name: "role", Label: "Role", Input: viewmodel.InputSelect, Options: crewRoles, Required: true},
		{Name: "phone_number", Label: "Phone Number", Input: viewmodel.InputText, Required: true},
		{Name: "nationality", Label: "Nationality", Input: viewmodel.InputText},
		{Name: "ship", Label: "Ship", Input: viewmodel.InputRef, Ref: ShipsName},
		{Name: "is_active", Label: "Active", Input: viewmodel.InputCheckbox},
	},
	EmptyNotice: "No crew members to export!",
	EmptyList:   "No crew members found.",
}
