package streetview

import (
	"math"
	"strconv"
	"strings"
)

// Source limits panorama searches to a capture source.
type Source string

const (
	SourceDefault Source = "default"
	SourceOutdoor Source = "outdoor"
)

// Default display parameters, matching the imagery API's documented defaults.
const (
	DefaultSize   = "600x400"
	DefaultFOV    = 90
	DefaultRadius = 50
	minFOV        = 10
	maxFOV        = 120
	minPitch      = -90
	maxPitch      = 90
)

// ImageOptions are the display parameters for an image request. The zero
// value is usable; Normalize fills in defaults and brings angle parameters
// into range (heading wraps, pitch and fov clamp).
type ImageOptions struct {
	// Size is the image dimensions as "widthxheight", e.g. "600x400".
	Size string
	// Heading is the camera compass heading in degrees.
	Heading float64
	// Pitch is the camera pitch in degrees relative to the Street View vehicle.
	Pitch float64
	// FOV is the horizontal field of view in degrees (zoom level).
	FOV float64
	// Radius is the panorama search radius in meters. Ignored for pano ids.
	Radius int
	// Source limits the search to a capture source.
	Source Source
}

// Normalize applies defaults and range rules: heading wraps into [0, 360),
// pitch clamps to [-90, 90], fov clamps to [10, 120].
func (o ImageOptions) Normalize() ImageOptions {
	if o.Size == "" {
		o.Size = DefaultSize
	}
	if o.FOV == 0 {
		o.FOV = DefaultFOV
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Source == "" {
		o.Source = SourceDefault
	}
	o.Heading = math.Mod(o.Heading, 360)
	if o.Heading < 0 {
		o.Heading += 360
	}
	o.Pitch = clamp(o.Pitch, minPitch, maxPitch)
	o.FOV = clamp(o.FOV, minFOV, maxFOV)
	return o
}

func (o ImageOptions) validate() error {
	if err := validateSize(o.Size); err != nil {
		return err
	}
	if o.Radius <= 0 {
		return validationErrorf("radius must be positive, got %d", o.Radius)
	}
	if o.Source != SourceDefault && o.Source != SourceOutdoor {
		return validationErrorf("source must be %q or %q, got %q", SourceDefault, SourceOutdoor, o.Source)
	}
	return nil
}

// MetadataOptions are the search parameters for a metadata request.
type MetadataOptions struct {
	Radius int
	Source Source
}

// Normalize applies the same defaults the image endpoint uses.
func (o MetadataOptions) Normalize() MetadataOptions {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Source == "" {
		o.Source = SourceDefault
	}
	return o
}

func (o MetadataOptions) validate() error {
	if o.Radius <= 0 {
		return validationErrorf("radius must be positive, got %d", o.Radius)
	}
	if o.Source != SourceDefault && o.Source != SourceOutdoor {
		return validationErrorf("source must be %q or %q, got %q", SourceDefault, SourceOutdoor, o.Source)
	}
	return nil
}

// Metadata describes a panorama as reported by the metadata endpoint.
type Metadata struct {
	Status    string  `json:"status"`
	Copyright string  `json:"copyright,omitempty"`
	Date      string  `json:"date,omitempty"`
	PanoID    string  `json:"pano_id,omitempty"`
	Location  *LatLng `json:"location,omitempty"`
}

// LatLng is a resolved coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StatusOK is the metadata status value indicating a panorama was found.
const StatusOK = "OK"

func validateSize(size string) error {
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return validationErrorf("size must be \"widthxheight\", got %q", size)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return validationErrorf("size width must be a positive integer, got %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return validationErrorf("size height must be a positive integer, got %q", h)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
