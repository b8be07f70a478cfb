// Package mockapi implements a local stand-in for the ModHub authentication
// API. It speaks the real wire contract (form-encoded POST bodies, the JSON
// token payload, and the error envelope) and issues deterministic fake
// tokens, so the CLI and the client packages can be exercised without
// touching the production platform.
package mockapi

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/modhubco/modhub/pkg/publisher"
)

// Config configures the mock server.
type Config struct {
	// APIKey is the accepted api_key query value. Empty accepts any
	// non-empty key.
	APIKey string

	Logger *zap.Logger

	// Publisher receives one audit event per handled request. Nil disables
	// auditing.
	Publisher publisher.Publisher
}

// Server is the mock platform API.
type Server struct {
	cfg Config
	app *fiber.App

	mu    sync.Mutex
	codes map[string]string // security code -> email it was issued for
}

// New creates a mock server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Publisher == nil {
		cfg.Publisher = publisher.NewNopPublisher()
	}

	s := &Server{
		cfg:   cfg,
		codes: make(map[string]string),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestid.New())
	app.Use(s.audit)
	app.Use(s.requireKey)

	app.Post("/oauth/emailrequest", s.emailRequest)
	app.Post("/oauth/emailexchange", s.emailExchange)
	app.Post("/external/galaxyauth", s.externalAuth("appdata"))
	app.Post("/external/itchioauth", s.externalAuth("itchio_token"))
	app.Post("/external/oculusauth", s.oculusAuth)
	app.Post("/external/steamauth", s.externalAuth("appdata"))
	app.Post("/external/link", s.link)

	s.app = app
	return s
}

// App exposes the underlying fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the given listener until Shutdown.
func (s *Server) Listen(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown gracefully stops the server and closes the publisher.
func (s *Server) Shutdown() error {
	err := s.app.Shutdown()
	if cerr := s.cfg.Publisher.Close(); err == nil {
		err = cerr
	}
	return err
}

// SecurityCodeFor returns the code emailRequest would issue for an email.
// Exposed for tests and for driving the CLI against the mock.
func SecurityCodeFor(email string) string {
	sum := sha256.Sum256([]byte("code:" + email))
	return hex.EncodeToString(sum[:])[:5]
}

func tokenFor(material string) string {
	sum := sha256.Sum256([]byte("token:" + material))
	return "mh." + hex.EncodeToString(sum[:])[:40]
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	DateExpires uint64 `json:"date_expires,omitempty"`
}

type messagePayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func apiError(c *fiber.Ctx, status, ref int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":      status,
			"error_ref": ref,
			"message":   message,
		},
	})
}

func (s *Server) audit(c *fiber.Ctx) error {
	err := c.Next()

	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	event, eventErr := publisher.NewEvent(id, c.Path(), c.Response().StatusCode())
	if eventErr != nil {
		s.cfg.Logger.Warn("skipping audit event", zap.Error(eventErr))
		return err
	}
	if pubErr := s.cfg.Publisher.Publish(c.UserContext(), event); pubErr != nil {
		s.cfg.Logger.Warn("publishing audit event", zap.Error(pubErr))
	}

	return err
}

func (s *Server) requireKey(c *fiber.Ctx) error {
	key := c.Query("api_key")
	if key == "" {
		return apiError(c, fiber.StatusUnauthorized, 11000, "An API key is required to access this endpoint.")
	}
	if s.cfg.APIKey != "" && key != s.cfg.APIKey {
		return apiError(c, fiber.StatusUnauthorized, 11001, "The supplied API key is invalid.")
	}
	return c.Next()
}

func (s *Server) emailRequest(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if email == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, 13004, "The email field is required.")
	}

	code := SecurityCodeFor(email)
	s.mu.Lock()
	s.codes[code] = email
	s.mu.Unlock()

	s.cfg.Logger.Info("issued security code", zap.String("email", email))

	return c.JSON(messagePayload{
		Code:    fiber.StatusOK,
		Message: "Enter the 5-digit security code sent to your email address.",
	})
}

func (s *Server) emailExchange(c *fiber.Ctx) error {
	code := c.FormValue("security_code")
	if code == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, 13005, "The security_code field is required.")
	}

	s.mu.Lock()
	email, ok := s.codes[code]
	if ok {
		delete(s.codes, code)
	}
	s.mu.Unlock()

	if !ok {
		return apiError(c, fiber.StatusUnauthorized, 11012, "The security code is invalid or has expired.")
	}

	return c.JSON(tokenPayload{AccessToken: tokenFor(email)})
}

// externalAuth builds a handler for the providers whose only mandatory field
// is a single ticket-like value.
func (s *Server) externalAuth(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.FormValue(field)
		if value == "" {
			return apiError(c, fiber.StatusUnprocessableEntity, 13010, "The "+field+" field is required.")
		}
		return c.JSON(tokenPayload{
			AccessToken: tokenFor(value),
			DateExpires: parsedExpiry(c),
		})
	}
}

func (s *Server) oculusAuth(c *fiber.Ctx) error {
	nonce := c.FormValue("nonce")
	userID := c.FormValue("user_id")
	authToken := c.FormValue("auth_token")
	if nonce == "" || userID == "" || authToken == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, 13011, "The nonce, user_id and auth_token fields are required.")
	}
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, 13012, "The user_id field must be a positive integer.")
	}
	return c.JSON(tokenPayload{
		AccessToken: tokenFor(nonce + ":" + userID),
		DateExpires: parsedExpiry(c),
	})
}

var linkServices = map[string]bool{
	"steam": true,
	"gog":   true,
	"itch":  true,
}

func (s *Server) link(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return apiError(c, fiber.StatusUnauthorized, 11005, "An access token is required to access this endpoint.")
	}

	email := c.FormValue("email")
	service := c.FormValue("service")
	serviceID := c.FormValue("service_id")
	if email == "" || service == "" || serviceID == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, 13020, "The email, service and service_id fields are required.")
	}
	if !linkServices[service] {
		return apiError(c, fiber.StatusUnprocessableEntity, 13021, "The service field must be one of steam, gog, itch.")
	}
	if _, err := strconv.ParseUint(serviceID, 10, 64); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, 13022, "The service_id field must be a positive integer.")
	}

	return c.JSON(messagePayload{
		Code:    fiber.StatusOK,
		Message: "You have successfully linked your " + service + " account.",
	})
}

func parsedExpiry(c *fiber.Ctx) uint64 {
	raw := c.FormValue("date_expires")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
