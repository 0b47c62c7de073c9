package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key holding the request id.
const LocalsKey = "ray_id"

// New creates a middleware that assigns every request a RayID. An incoming
// X-Ray-ID header is kept so callers can correlate their own logs.
func New() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     HeaderName,
		Generator:  uuid.NewString,
		ContextKey: LocalsKey,
	})
}
