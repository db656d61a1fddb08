// Package streetview provides a thin client for the Google Street View
// Static API: image fetches and panorama metadata lookups.
//
// # Location Selectors
//
// Every request targets a panorama through exactly one of three selectors,
// represented by the Location type:
//
//   - a street address, geocoded by the API
//   - a latitude/longitude pair
//   - a specific panorama id
//
// The selector maps to the "location" query parameter (address and
// coordinates) or the "pano" parameter (panorama id). The search radius does
// not apply to pano requests and is omitted from them.
//
// # Error Handling
//
// Errors are surfaced synchronously and never retried:
//
//   - ErrMissingAPIKey: the client has no API key
//   - *ValidationError: unset selector or out-of-range parameter, detected
//     before any network call
//   - *APIError: non-success HTTP status, a non-OK metadata status, or an
//     error payload the API embeds in an HTTP 200 image response
package streetview
