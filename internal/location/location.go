// Package location models the host's positioning capability. Device GPS and
// reverse geocoding live outside this module; the weather controller only
// depends on Provider.
package location

import (
	"context"
	"errors"
)

var ErrLocationUnavailable = errors.New("unable to get location")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the best-effort reverse geocoding result. Either field may be empty.
type Place struct {
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type Provider interface {
	CurrentCoordinates(ctx context.Context) (Coordinates, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (Place, error)
}

// StaticProvider reports a fixed position, for hosts without a positioning
// sensor. A nil Coordinates means no position is configured.
type StaticProvider struct {
	Coordinates *Coordinates
	Place       Place
}

func NewStaticProvider(coordinates *Coordinates, place Place) *StaticProvider {
	return &StaticProvider{Coordinates: coordinates, Place: place}
}

func (p *StaticProvider) CurrentCoordinates(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	if p.Coordinates == nil {
		return Coordinates{}, ErrLocationUnavailable
	}
	return *p.Coordinates, nil
}

func (p *StaticProvider) ReverseGeocode(ctx context.Context, _, _ float64) (Place, error) {
	if err := ctx.Err(); err != nil {
		return Place{}, err
	}
	return p.Place, nil
}

var _ Provider = (*StaticProvider)(nil)
