package domain

// ShipmentStatus represents the lifecycle state of a shipment. The console
// does not enforce transitions; any status may be set from the form.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentDelayed   ShipmentStatus = "delayed"
)

var ShipmentStatuses = []ShipmentStatus{
	ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentDelayed,
}

// Shipment moves one cargo on one ship between two ports. All four
// references are weak: the referenced records may not be loaded.
type Shipment struct {
	ID                ID             `json:"id,omitempty"`
	Cargo             ID             `json:"cargo"               form:"cargo"               validate:"required"`
	Ship              ID             `json:"ship"                form:"ship"                validate:"required"`
	OriginPort        ID             `json:"origin_port"         form:"origin_port"         validate:"required"`
	DestinationPort   ID             `json:"destination_port"    form:"destination_port"    validate:"required"`
	DepartureDate     Date           `json:"departure_date"      form:"departure_date"      validate:"required"`
	ArrivalEstimate   Date           `json:"arrival_estimate"    form:"arrival_estimate"    validate:"required"`
	ActualArrivalDate Date           `json:"actual_arrival_date" form:"actual_arrival_date"`
	Status            ShipmentStatus `json:"status"              form:"status"              validate:"required,oneof=pending in_transit delivered delayed"`
	IsActive          bool           `json:"is_active"           form:"is_active"`
}

func NewShipment() Shipment {
	return Shipment{Status: ShipmentPending, IsActive: true}
}
