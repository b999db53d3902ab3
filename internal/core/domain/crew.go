package domain

type CrewRole string

const (
	CrewRoleCaptain        CrewRole = "Captain"
	CrewRoleChiefOfficer   CrewRole = "Chief Officer"
	CrewRoleAbleSeaman     CrewRole = "Able Seaman"
	CrewRoleOrdinarySeaman CrewRole = "Ordinary Seaman"
	CrewRoleEngineCadet    CrewRole = "Engine Cadet"
	CrewRoleRadioOfficer   CrewRole = "Radio Officer"
	CrewRoleChiefCook      CrewRole = "Chief Cook"
	CrewRoleSteward        CrewRole = "Steward"
	CrewRoleDeckhand       CrewRole = "Deckhand"
)

var CrewRoles = []CrewRole{
	CrewRoleCaptain, CrewRoleChiefOfficer, CrewRoleAbleSeaman,
	CrewRoleOrdinarySeaman, CrewRoleEngineCadet, CrewRoleRadioOfficer,
	CrewRoleChiefCook, CrewRoleSteward, CrewRoleDeckhand,
}

// CrewMember is a seafarer, optionally assigned to a ship.
type CrewMember struct {
	ID          ID       `json:"id,omitempty"`
	Ship        ID       `json:"ship"         form:"ship"`
	FirstName   string   `json:"first_name"   form:"first_name"   validate:"required"`
	LastName    string   `json:"last_name"    form:"last_name"    validate:"required"`
	Role        CrewRole `json:"role"         form:"role"         validate:"required,oneof=Captain 'Chief Officer' 'Able Seaman' 'Ordinary Seaman' 'Engine Cadet' 'Radio Officer' 'Chief Cook' Steward Deckhand"`
	PhoneNumber string   `json:"phone_number" form:"phone_number" validate:"required"`
	Nationality string   `json:"nationality"  form:"nationality"`
	IsActive    bool     `json:"is_active"    form:"is_active"`
}

func NewCrewMember() CrewMember {
	return CrewMember{Role: CrewRoleCaptain, IsActive: true}
}
