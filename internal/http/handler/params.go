package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"farmacia/internal/service"
)

// parseID reads the :id route parameter as an integer. Zero and negative ids
// parse fine; the service reports them as not found.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseNonNegative reads an optional non-negative integer query parameter.
func parseNonNegative(c *fiber.Ctx, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parsePage reads skip and limit. On failure it returns the name of the
// offending parameter.
func parsePage(c *fiber.Ctx) (skip, limit int, bad string) {
	skip, ok := parseNonNegative(c, "skip", 0)
	if !ok {
		return 0, 0, "skip"
	}
	limit, ok = parseNonNegative(c, "limit", service.DefaultLimit)
	if !ok {
		return 0, 0, "limit"
	}
	return skip, limit, ""
}

func writeBadPage(c *fiber.Ctx, bad string) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_"+strings.ToUpper(bad), bad+" must be a non-negative integer")
}
