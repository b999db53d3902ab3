package domain

// ShipType is the vessel class.
type ShipType string

const (
	ShipTypeCargo      ShipType = "cargo ship"
	ShipTypePassenger  ShipType = "passenger ship"
	ShipTypeMilitary   ShipType = "military ship"
	ShipTypeIcebreaker ShipType = "icebreaker"
	ShipTypeFishing    ShipType = "fishing vessel"
	ShipTypeBarge      ShipType = "barge ship"
)

// ShipTypes lists the vessel classes in display order.
var ShipTypes = []ShipType{
	ShipTypeCargo, ShipTypePassenger, ShipTypeMilitary,
	ShipTypeIcebreaker, ShipTypeFishing, ShipTypeBarge,
}

// ShipStatus is the operational state of a ship. It is independent from
// IsActive: a decommissioned ship may still be active in the console.
type ShipStatus string

const (
	ShipStatusActive           ShipStatus = "active"
	ShipStatusUnderMaintenance ShipStatus = "under maintenance"
	ShipStatusDecommissioned   ShipStatus = "decommissioned"
)

var ShipStatuses = []ShipStatus{
	ShipStatusActive, ShipStatusUnderMaintenance, ShipStatusDecommissioned,
}

type Ship struct {
	ID                 ID         `json:"id,omitempty"`
	Name               string     `json:"name"                form:"name"                validate:"required,max=255"`
	RegistrationNumber string     `json:"registration_number" form:"registration_number" validate:"required,max=200"`
	CapacityInTonnes   Decimal    `json:"capacity_in_tonnes"  form:"capacity_in_tonnes"  validate:"required,numeric"`
	Type               ShipType   `json:"type"                form:"type"                validate:"required,oneof='cargo ship' 'passenger ship' 'military ship' icebreaker 'fishing vessel' 'barge ship'"`
	Status             ShipStatus `json:"status"              form:"status"              validate:"required,oneof=active 'under maintenance' decommissioned"`
	IsActive           bool       `json:"is_active"           form:"is_active"`
}

// NewShip returns the blank form draft.
func NewShip() Ship {
	return Ship{Type: ShipTypeCargo, Status: ShipStatusActive, IsActive: true}
}
