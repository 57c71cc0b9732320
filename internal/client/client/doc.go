// Package client talks to the employeehub REST API on behalf of the CLI.
//
// HTTPClient keeps the token returned by Login in memory and sends it in the
// auth header of every later request. Failures are reported as *APIError,
// which matches ErrUnauthorized, ErrNotFound or ErrRejected with errors.Is
// depending on the status code; transport failures match ErrUnavailable.
package client
