package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude.
	MaxLongitude = 180.0
)

// ErrLocationIsNotConstructed is returned when a Location was not created through NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation constructor")

// Location is the delivery target of an order: a free-text address and the
// coordinates the rider navigates to.
//
// Example:
//
//	loc, err := kernel.NewLocation("221B Baker Street", 51.5237, -0.1585)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // 221B Baker Street (51.523700,-0.158500)
type Location struct { //nolint:recvcheck //using for validation
	address   string
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location after checking that the address is not blank and
// that both coordinates are within their geographic bounds. All violations are
// reported together.
//
// Parameters:
//   - address: Free-text delivery address, stored trimmed (must not be blank)
//   - latitude: Degrees between MinLatitude and MaxLatitude inclusive
//   - longitude: Degrees between MinLongitude and MaxLongitude inclusive
//
// Returns:
//   - Location: A valid location instance
//   - error: ErrValueIsRequired for a blank address and ErrValueIsOutOfRange for
//     each coordinate outside its bounds, joined
func NewLocation(address string, latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Address returns the free-text delivery address.
func (l Location) Address() string {
	return l.address
}

// Latitude returns the delivery latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the delivery longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%f,%f)", l.address, l.latitude, l.longitude)
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	l.address = address
	return nil
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}
