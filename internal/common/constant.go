// Package common contains shared constants and sentinel errors used across
// splitchat components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer
// credential on inbound and outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the Authorization header.
const BearerPrefix = "Bearer "
