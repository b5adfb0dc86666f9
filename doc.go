// Package tan is a client for the TAN open-data API serving the Nantes
// public-transit network (https://open.tan.fr/ewp).
//
// The client exposes one typed operation per upstream endpoint: nearby and
// all stops, stop timetables by line and direction, and real-time wait
// times. Every operation validates its inputs before any network call and
// returns the decoded upstream payload verbatim, or one of the typed errors
// in this package (ValidationError, NetworkError, UpstreamError,
// DecodeError, CancelledError).
//
// The upstream service is public and unauthenticated. The client is
// stateless and safe for concurrent use.
package tan
