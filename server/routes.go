package server

import "net/http"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteWellKnownOpenIDConfig, ChainMiddleware(s.WellKnownOpenIDConfig(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthorize, ChainMiddleware(s.Authorize(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteToken, ChainMiddleware(s.Token(), s.APIMiddleware()...))

	// CORS preflight for every route; CorsMiddleware answers OPTIONS itself
	s.RegisterRouteHandler("OPTIONS /", ChainMiddleware(func(http.ResponseWriter, *http.Request) {}, s.APIMiddleware()...))
}
