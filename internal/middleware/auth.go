package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"

	"bankrules/internal/errors"
	"bankrules/internal/handlers"
	"bankrules/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DebugUserHeader names a user ID directly, bypassing JWT verification.
// Only honored when the middleware is built with devBypass enabled.
const DebugUserHeader = "X-Debug-User"

// RequireAuth creates a middleware that requires a valid HS256 JWT
// and stores the authenticated user's ID in the request context
func RequireAuth(secret []byte, devBypass bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if devBypass {
				if debugUser := c.Request().Header.Get(DebugUserHeader); debugUser != "" {
					userID, err := uuid.Parse(debugUser)
					if err != nil {
						return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Debug user header must be a UUID"))
					}
					c.Set("user_id", userID)
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			tokenString, err := extractBearerToken(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims := &models.AuthClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			if !token.Valid {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}

func extractBearerToken(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("authorization header must be in the form 'Bearer <token>'")
	}
	return parts[1], nil
}
