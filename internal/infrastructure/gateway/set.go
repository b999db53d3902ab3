package gateway

import (
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/resources"
)

// Set is the six resource bindings of one session. Only Ports deletes.
type Set struct {
	Ships     *Resource[domain.Ship]
	Crew      *Resource[domain.CrewMember]
	Ports     *DeletableResource[domain.Port]
	Clients   *Resource[domain.Client]
	Cargo     *Resource[domain.Cargo]
	Shipments *Resource[domain.Shipment]
}

// Resources binds every collection to this connection.
func (c *Conn) Resources() *Set {
	return &Set{
		Ships:     NewResource[domain.Ship](c, resources.ShipsName),
		Crew:      NewResource[domain.CrewMember](c, resources.CrewName),
		Ports:     NewDeletableResource[domain.Port](c, resources.PortsName),
		Clients:   NewResource[domain.Client](c, resources.ClientsName),
		Cargo:     NewResource[domain.Cargo](c, resources.CargoName),
		Shipments: NewResource[domain.Shipment](c, resources.ShipmentsName),
	}
}
