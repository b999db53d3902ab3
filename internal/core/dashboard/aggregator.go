// Package dashboard computes the three counts shown on the console's
// landing page.
package dashboard

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
)

// Summary holds the dashboard counts. A count whose fetch failed is zero.
type Summary struct {
	ActiveShips        int
	ShipmentsInTransit int
	ActiveClients      int
}

type Aggregator struct {
	ships     ports.Lister[domain.Ship]
	shipments ports.Lister[domain.Shipment]
	clients   ports.Lister[domain.Client]
	log       zerolog.Logger
}

func NewAggregator(ships ports.Lister[domain.Ship], shipments ports.Lister[domain.Shipment], clients ports.Lister[domain.Client], log zerolog.Logger) *Aggregator {
	return &Aggregator{ships: ships, shipments: shipments, clients: clients, log: log}
}

// Summary runs the three fetches concurrently. Each fetch is independent:
// a failure is logged and leaves only its own count at zero. A rejected
// session is the exception; it is returned so the caller can send the user
// back to the login page.
func (a *Aggregator) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		s.ActiveShips, err = count(egCtx, a, "ships", a.ships, func(v domain.Ship) bool { return v.IsActive })
		return err
	})
	eg.Go(func() (err error) {
		s.ShipmentsInTransit, err = count(egCtx, a, "shipments", a.shipments, func(v domain.Shipment) bool {
			return v.Status == domain.ShipmentInTransit
		})
		return err
	})
	eg.Go(func() (err error) {
		s.ActiveClients, err = count(egCtx, a, "clients", a.clients, domain.Client.Active)
		return err
	})

	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func count[T any](ctx context.Context, a *Aggregator, name string, l ports.Lister[T], pred func(T) bool) (int, error) {
	items, err := l.List(ctx)
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNoSession) {
		return 0, err
	}
	if err != nil {
		a.log.Error().Err(err).Str("resource", name).Msg("dashboard fetch failed")
		return 0, nil
	}
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n, nil
}
