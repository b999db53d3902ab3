package domain

// Port has no activation flag; it is the only record the console deletes.
type Port struct {
	ID           ID      `json:"id,omitempty"`
	PortName     string  `json:"port_name"     form:"port_name"     validate:"required"`
	Location     string  `json:"location"      form:"location"      validate:"required"`
	Capacity     Decimal `json:"capacity"      form:"capacity"      validate:"required,numeric"`
	ContactEmail string  `json:"contact_email" form:"contact_email" validate:"required,email"`
}

func NewPort() Port { return Port{} }
