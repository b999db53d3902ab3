package domain

// Client is a shipping customer. Clients are never deactivated or deleted
// from the console; RegisteredDate is assigned by the backend. IsActive is
// only set when the backend reports it.
type Client struct {
	ID             ID     `json:"id,omitempty"`
	CompanyName    string `json:"company_name"    form:"company_name"    validate:"required"`
	ContactPerson  string `json:"contact_person"  form:"contact_person"  validate:"required"`
	ContactEmail   string `json:"contact_email"   form:"contact_email"   validate:"required,email"`
	ContactPhone   string `json:"contact_phone"   form:"contact_phone"   validate:"required"`
	Address        string `json:"address"         form:"address"         validate:"required"`
	RegisteredDate Date   `json:"registered_date,omitempty"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// Active reports an explicit is_active of true.
func (c Client) Active() bool {
	return c.IsActive != nil && *c.IsActive
}

func NewClient() Client { return Client{} }
