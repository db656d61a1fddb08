package streetview

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type locationKind int

const (
	locationUnset locationKind = iota
	locationAddress
	locationLatLng
	locationPano
)

// Location selects which panorama a request targets. Exactly one of the three
// selector kinds (address, coordinates, panorama id) is populated; the zero
// value selects nothing and fails validation. Construct via AddressLocation,
// LatLngLocation, or PanoLocation.
type Location struct {
	kind    locationKind
	address string
	lat     float64
	lng     float64
	panoID  string
}

// AddressLocation selects a panorama by street address. The address string is
// passed to the API as-is for geocoding.
func AddressLocation(address string) Location {
	return Location{kind: locationAddress, address: address}
}

// LatLngLocation selects a panorama by latitude/longitude coordinates.
func LatLngLocation(lat, lng float64) Location {
	return Location{kind: locationLatLng, lat: lat, lng: lng}
}

// PanoLocation selects a specific panorama by its id.
func PanoLocation(id string) Location {
	return Location{kind: locationPano, panoID: id}
}

// ParseLatLng parses a comma-separated "lat,lng" pair into a Location.
func ParseLatLng(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, validationErrorf("invalid lat_lng %q: use format \"40.714728,-73.998672\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, validationErrorf("invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, validationErrorf("invalid longitude in %q", s)
	}
	return LatLngLocation(lat, lng), nil
}

// IsSet reports whether the location selects anything.
func (l Location) IsSet() bool {
	return l.kind != locationUnset
}

// isPano reports whether the location is a panorama id selector. The search
// radius parameter does not apply to pano requests.
func (l Location) isPano() bool {
	return l.kind == locationPano
}

func (l Location) validate() error {
	switch l.kind {
	case locationAddress:
		if l.address == "" {
			return validationErrorf("address must not be empty")
		}
	case locationLatLng:
		if l.lat < -90 || l.lat > 90 {
			return validationErrorf("latitude %v out of range [-90, 90]", l.lat)
		}
		if l.lng < -180 || l.lng > 180 {
			return validationErrorf("longitude %v out of range [-180, 180]", l.lng)
		}
	case locationPano:
		if l.panoID == "" {
			return validationErrorf("pano_id must not be empty")
		}
	default:
		return validationErrorf("must provide one of: location, lat_lng, or pano_id")
	}
	return nil
}

// apply sets the selector query parameter: "location" for addresses and
// coordinates, "pano" for panorama ids.
func (l Location) apply(q url.Values) {
	switch l.kind {
	case locationAddress:
		q.Set("location", l.address)
	case locationLatLng:
		q.Set("location", fmt.Sprintf("%v,%v", l.lat, l.lng))
	case locationPano:
		q.Set("pano", l.panoID)
	}
}

// String describes the selector for logs and error messages.
func (l Location) String() string {
	switch l.kind {
	case locationAddress:
		return "address:" + l.address
	case locationLatLng:
		return fmt.Sprintf("latlng:%v,%v", l.lat, l.lng)
	case locationPano:
		return "pano:" + l.panoID
	default:
		return "unset"
	}
}
