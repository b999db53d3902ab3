package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/core/resources"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
)

const gatewaysKey = "gateways"

// CredentialSource yields the token and refresh hook of a session store.
type CredentialSource interface {
	Credentials(store ports.SessionStore) ports.Credentials
}

// Connector binds the API client to the session of the current request.
type Connector struct {
	client *gateway.Client
	creds  CredentialSource
	log    zerolog.Logger
}

func NewConnector(client *gateway.Client, creds CredentialSource, log zerolog.Logger) *Connector {
	return &Connector{client: client, creds: creds, log: log}
}

// Resources returns the request's resource bindings, creating them once.
func (k *Connector) Resources(c echo.Context) (*gateway.Set, error) {
	if set, ok := c.Get(gatewaysKey).(*gateway.Set); ok {
		return set, nil
	}
	store, err := ctxStore(c)
	if err != nil {
		return nil, err
	}
	set := k.client.Bind(k.creds.Credentials(store)).Resources()
	c.Set(gatewaysKey, set)
	return set, nil
}

// Options lists the records of resource as select options for reference
// fields. A failed fetch is logged and yields no options; the form then
// falls back to a plain id input.
func (k *Connector) Options(c echo.Context, resource string) []viewmodel.Option {
	set, err := k.Resources(c)
	if err != nil {
		return nil
	}
	ctx := c.Request().Context()

	var opts []viewmodel.Option
	switch resource {
	case resources.ShipsName:
		opts, err = refOptions(ctx, set.Ships, resources.Ships)
	case resources.CrewName:
		opts, err = refOptions(ctx, set.Crew, resources.Crew)
	case resources.PortsName:
		opts, err = refOptions(ctx, set.Ports, resources.Ports)
	case resources.ClientsName:
		opts, err = refOptions(ctx, set.Clients, resources.Clients)
	case resources.CargoName:
		opts, err = refOptions(ctx, set.Cargo, resources.Cargo)
	case resources.ShipmentsName:
		opts, err = refOptions(ctx, set.Shipments, resources.Shipments)
	}
	if err != nil {
		k.log.Warn().Err(err).Str("resource", resource).Msg("reference options unavailable")
		return nil
	}
	return opts
}

func refOptions[T any](ctx context.Context, l ports.Lister[T], cfg viewmodel.Config[T]) ([]viewmodel.Option, error) {
	items, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]viewmodel.Option, 0, len(items))
	for _, it := range items {
		id := cfg.ID(it).String()
		label := id
		if cfg.Label != nil {
			if name := cfg.Label(it); name != "" {
				label = name + " (#" + id + ")"
			}
		}
		opts = append(opts, viewmodel.Option{Value: id, Label: label})
	}
	return opts, nil
}
