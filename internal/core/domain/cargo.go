package domain

type CargoType string

const (
	CargoPerishable CargoType = "perishable"
	CargoDangerous  CargoType = "dangerous"
	CargoGeneral    CargoType = "general"
	CargoOther      CargoType = "other"
)

var CargoTypes = []CargoType{CargoPerishable, CargoDangerous, CargoGeneral, CargoOther}

type Cargo struct {
	ID          ID        `json:"id,omitempty"`
	Description string    `json:"description" form:"description" validate:"required"`
	Weight      Decimal   `json:"weight"      form:"weight"      validate:"required,numeric,positive"`
	Volume      Decimal   `json:"volume"      form:"volume"      validate:"omitempty,numeric"`
	Client      ID        `json:"client"      form:"client"`
	CargoType   CargoType `json:"cargo_type"  form:"cargo_type"  validate:"required,oneof=perishable dangerous general other"`
	IsActive    bool      `json:"is_active"   form:"is_active"`
}

func NewCargo() Cargo {
	return Cargo{CargoType: CargoGeneral, IsActive: true}
}
