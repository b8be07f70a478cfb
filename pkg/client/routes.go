package client

import "net/http"

// Route identifies one API endpoint.
type Route int

// Authentication and account-linking routes.
const (
	AuthEmailRequest Route = iota
	AuthEmailExchange
	AuthGalaxy
	AuthItchio
	AuthOculus
	AuthSteam
	LinkAccount
)

type routeSpec struct {
	method string
	path   string
	// needsToken marks endpoints that only work with a bearer token attached.
	needsToken bool
}

var routes = map[Route]routeSpec{
	AuthEmailRequest:  {http.MethodPost, "/oauth/emailrequest", false},
	AuthEmailExchange: {http.MethodPost, "/oauth/emailexchange", false},
	AuthGalaxy:        {http.MethodPost, "/external/galaxyauth", false},
	AuthItchio:        {http.MethodPost, "/external/itchioauth", false},
	AuthOculus:        {http.MethodPost, "/external/oculusauth", false},
	AuthSteam:         {http.MethodPost, "/external/steamauth", false},
	LinkAccount:       {http.MethodPost, "/external/link", true},
}

// Path returns the URL path for the route.
func (r Route) Path() string {
	return routes[r].path
}

// Method returns the HTTP method for the route.
func (r Route) Method() string {
	return routes[r].method
}

// NeedsToken reports whether the route requires a bearer token.
func (r Route) NeedsToken() bool {
	return routes[r].needsToken
}
