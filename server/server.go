package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oidc-params/discovery"
	"github.com/jrsteele09/go-oidc-params/internal/config"
	"github.com/jrsteele09/go-oidc-params/oauth2"
	"github.com/rs/zerolog/log"
)

// AuthorizeHandlerFunc receives an authorization request that passed validation.
// Issuing codes or tokens is the job of whatever is plugged in here.
type AuthorizeHandlerFunc func(w http.ResponseWriter, r *http.Request, req *oauth2.AuthorizeRequest)

// TokenHandlerFunc receives a token request that passed validation.
type TokenHandlerFunc func(w http.ResponseWriter, r *http.Request, req *oauth2.TokenRequest)

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	document  *oauth2.DiscoveryDocument
	validator *oauth2.Validator
	authorize AuthorizeHandlerFunc
	token     TokenHandlerFunc
}

// Option customises a Server.
type Option func(*Server)

// WithAuthorizeHandler replaces the default echo handler for /authorize.
func WithAuthorizeHandler(h AuthorizeHandlerFunc) Option {
	return func(s *Server) {
		s.authorize = h
	}
}

// WithTokenHandler replaces the default echo handler for /token.
func WithTokenHandler(h TokenHandlerFunc) Option {
	return func(s *Server) {
		s.token = h
	}
}

// WithDocument serves doc instead of the one built from configuration.
func WithDocument(doc *oauth2.DiscoveryDocument) Option {
	return func(s *Server) {
		s.document = doc
	}
}

func New(c config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		env:       c.GetEnv(),
		mux:       http.NewServeMux(),
		config:    c,
		authorize: EchoAuthorize,
		token:     EchoToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.document == nil {
		s.document = discovery.NewDocument(c.GetBaseURL(), discovery.FromConfig(c))
	}
	if err := s.document.Validate(); err != nil {
		return nil, fmt.Errorf("[Server New] invalid discovery document: %w", err)
	}
	s.validator = oauth2.NewValidator(
		oauth2.WithRequirePKCE(c.GetRequirePKCE()),
		oauth2.WithProvider(s.document),
	)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Document returns the discovery document the server advertises.
func (s *Server) Document() *oauth2.DiscoveryDocument {
	return s.document
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		method, path, found := strings.Cut(route, " ")
		if !found {
			method, path = "", route
		}
		log.Info().Str("method", method).Str("path", path).Msg("Route registered")
	}
}
