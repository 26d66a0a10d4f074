package server

import "github.com/jrsteele09/go-oidc-params/discovery"

// Route path constants
const (
	RouteWellKnownOpenIDConfig = discovery.PathWellKnown
	RouteAuthorize             = discovery.PathAuthorize
	RouteToken                 = discovery.PathToken
)
