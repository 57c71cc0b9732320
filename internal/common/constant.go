// Package common contains shared constants and sentinel errors used across
// employeehub components.
package common

// AuthHeaderName is the HTTP header carrying the raw access token. The web
// frontend and the CLI both send the token here instead of Authorization.
const AuthHeaderName = "auth"
