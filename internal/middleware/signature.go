package middleware

import (
	"github.com/gofiber/fiber/v2"

	"walletsync/internal/services/signature"
	"walletsync/internal/utils/response"
)

// SignatureVerification gates webhook routes on the provider HMAC. It runs
// against the raw body bytes before any parsing, so an unauthenticated
// request never reaches validation or a store.
func SignatureVerification(verifier *signature.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !verifier.Verify(c.Get(fiber.HeaderAuthorization), c.Body()) {
			return response.Unauthorized(c, "Unauthorized: Invalid HMAC value.")
		}
		return c.Next()
	}
}
