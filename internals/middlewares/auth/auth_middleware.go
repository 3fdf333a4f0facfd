// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"barakahku_backend/internals/configs"
)

// Webhook Midtrans harus bisa masuk tanpa token
var skipPaths = map[string]struct{}{
	"/api/payments/donations/notification": {},
	"/api/payments/orders/notification":    {},
}

// AuthMiddleware memverifikasi bearer token JWT dan menaruh user_id di Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip path tertentu (webhook dsb.)
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Ambil user_id
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		// 6) Role (kalau ada di klaim)
		if role, ok := claims["role"].(string); ok && role != "" {
			c.Locals("role", role)
		}

		return c.Next()
	}
}

// AdminOnly dipasang SETELAH AuthMiddleware: hanya meloloskan token
// dengan klaim role=admin.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Admin only")
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware mengisi user_id bila ada token valid,
// tapi tetap meloloskan request tanpa token (donasi guest).
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return c.Next()
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}
		if userID, err := extractUserID(claims); err == nil {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}

	// fallback cookie
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		raw, ok = claims["sub"]
		if !ok {
			return uuid.Nil, errors.New("missing user_id claim")
		}
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, errors.New("user_id claim is not a string")
	}
	return uuid.Parse(s)
}
