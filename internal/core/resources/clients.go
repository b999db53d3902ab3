package resources

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

// Client sort fields.
const (
	SortCompanyName    = "company_name"
	SortContactPerson  = "contact_person"
	SortRegisteredDate = "registered_date"
)

// Clients are never deactivated or deleted. They are the only table with
// column sorting, ascending by company name by default.
var Clients = viewmodel.Config[domain.Client]{
	Resource: ClientsName,
	Title:    "Clients",
	Noun:     "client",
	NewDraft: domain.NewClient,
	ID:       func(c domain.Client) domain.ID { return c.ID },
	Label:    func(c domain.Client) string { return c.CompanyName },
	Sort: &viewmodel.Sort[domain.Client]{
		Default: SortCompanyName,
		Fields: []viewmodel.SortField[domain.Client]{
			{Name: SortCompanyName, Column: "Company", Kind: viewmodel.SortString, Value: func(c domain.Client) string { return c.CompanyName }},
			{Name: SortContactPerson, Column: "Contact Person", Kind: viewmodel.SortString, Value: func(c domain.Client) string { return c.ContactPerson }},
			{Name: SortRegisteredDate, Column: "Registered", Kind: viewmodel.SortDate, Value: func(c domain.Client) string { return c.RegisteredDate.String() }},
		},
	},
	Columns: []export.Column[domain.Client]{
		{Header: "Company", Value: func(c domain.Client) string { return c.CompanyName }},
		{Header: "Contact Person", Value: func(c domain.Client) string { return c.ContactPerson }},
		{Header: "Email", Value: func(c domain.Client) string { return c.ContactEmail }},
		{Header: "Phone", Value: func(c domain.Client) string { return c.ContactPhone }},
		{Header: "Address", Value: func(c domain.Client) string { return c.Address }},
		{Header: "Registered", Value: func(c domain.Client) string { return c.RegisteredDate.String() }},
	},
	Fields: []viewmodel.Field{
		{Name: "company_name", Label: "Company Name", Input: viewmodel.InputText, Required: true},
		{Name: "contact_person", Label: "Contact Person", Input: viewmodel.InputText, Required: true},
		{Name: "contact_email", Label: "Contact Email", Input: viewmodel.InputEmail, Required: true},
		{Name: "contact_phone", Label: "Contact Phone", Input: viewmodel.InputText, Required: true},
		{Name: "address", Label: "Address", Input: viewmodel.InputTextarea, Required: true},
	},
	EmptyNotice: "No clients to export!",
	EmptyList:   "No clients found.",
}
