package httpserver

import (
	"errors"
	"runtime/debug"
	"strconv"
	"time"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

const (
	principalKey = "anynote.principal"
	sessionKey   = "anynote.session"
)

// logRequests logs method, path, status and duration for every request.
// Payloads are never logged.
func (s *Server) logRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", c.IP()),
		)
		return err
	}
}

// recoverPanic converts handler panics into 500 responses.
func (s *Server) recoverPanic() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Path()),
				)
				err = c.Status(fiber.StatusInternalServerError).
					JSON(fiber.Map{"error": "internal"})
			}
		}()
		return c.Next()
	}
}

// jwtGuard verifies the bearer token signature and expiry.
func (s *Server) jwtGuard() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: s.signKey},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "unauthorized"})
		},
	})
}

// resolvePrincipal builds the immutable per-request identity from verified
// claims and rejects tokens whose backing session is revoked or expired.
func (s *Server) resolvePrincipal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return unauthorized(c)
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}
		sub, _ := claims["sub"].(string)
		jti, _ := claims["jti"].(string)
		uname, _ := claims["uname"].(string)

		sid, err := uuid.FromString(jti)
		if err != nil {
			return unauthorized(c)
		}
		accountID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || accountID <= 0 {
			return unauthorized(c)
		}

		if err := s.auth.ValidateSession(c.Context(), sid); err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				return unauthorized(c)
			}
			return s.fail(c, err)
		}

		c.Locals(principalKey, model.Principal{AccountID: accountID, Username: uname})
		c.Locals(sessionKey, sid)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}

// principal returns the identity stored by resolvePrincipal.
func principal(c *fiber.Ctx) model.Principal {
	p, _ := c.Locals(principalKey).(model.Principal)
	return p
}

// sessionID returns the session behind the current request's token.
func sessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(sessionKey).(uuid.UUID)
	return id
}
