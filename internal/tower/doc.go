// Package tower provides an HTTP client for the tower backend API.
//
// # Overview
//
// The tower backend owns all airport occupancy state. Lander only reads the
// airport directory, reads per-airport busy/free status, and posts landing
// attempts. This package is the typed wrapper around those three calls.
//
// # API Endpoints
//
//   - GET /airports: array of {airportID, airportName}
//   - GET /airport-status/{airportID}: {isBusy, timeRemaining}
//   - POST /land/{airportID}: {isBusy, message}
//
// Airport ids are path-escaped before they are placed in the URL.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json header
//   - Include User-Agent: lander/0.1 header
//   - Are bounded only by the caller's context deadline
//   - Return wrapped errors with context about what failed
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "api /airports returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// # Design Rationale
//
// No caching and no retries. The UI decides the polling cadence, and every
// failure is surfaced to the caller, which logs it and moves on.
package tower
