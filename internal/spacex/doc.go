// Package spacex provides the HTTP client for the public SpaceX REST API.
//
// # Overview
//
// The client is the remote data source of the application. It issues exactly
// one GET per call, decodes the JSON body into wire records and hands the
// outcome back as a result.Result. It never retries; retry policy belongs to
// the caller (the repository, the poller or the user pressing "r").
//
// # Endpoints
//
//   - GET launches?limit&offset: general listing (default limit 20, offset 0)
//   - GET launches/upcoming?limit: upcoming launches (default limit 10)
//   - GET launches/past?limit&offset: flown launches (default limit 20, offset 0)
//   - GET launches/latest: the most recent launch
//   - GET rockets, GET rockets/{id}
//   - GET capsules?limit&offset
//
// Paths are resolved beneath the configured base URL, so the version segment
// (for example /v4/) is kept.
//
// # Errors
//
// Every failure is an *Error carrying a Kind:
//
//   - KindTransport: request could not be built or sent (network, timeout, cancel)
//   - KindHTTPStatus: the API answered with a non-2xx status
//   - KindDecode: the body was not a single well-formed JSON value of the expected shape
//
// Use errors.Is with ErrTransport, ErrHTTPStatus or ErrDecode to branch on the
// kind; errors.Unwrap exposes the underlying cause.
//
// # Mapping
//
// LaunchRecord, RocketRecord and CapsuleRecord mirror the wire format. Their
// ToDomain methods produce the domain entities stored in the local cache.
package spacex
