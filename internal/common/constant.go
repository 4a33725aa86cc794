// Package common contains shared constants and sentinel errors used across
// the vaultshare server and its Go client.
package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound and outbound requests.
const AccessTokenHeaderName = "access_token"

// SystemActor is recorded as the performer of transitions nobody requested,
// such as expiry.
const SystemActor = "system"

// DefaultShareTTL applies when a share request carries no TTL.
const DefaultShareTTL = 1440 * time.Minute
