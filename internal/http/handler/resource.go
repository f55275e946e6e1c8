package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"farmacia/internal/service"
)

// TotalCountHeader carries the unpaged row count on list responses.
const TotalCountHeader = "X-Total-Count"

// ListResource handles GET /{entity}/?skip=&limit=.
// The body is a JSON array; the total row count goes in X-Total-Count.
func ListResource[T any, I any](entity string, svc service.CRUDService[T, I]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, limit, bad := parsePage(c)
		if bad != "" {
			return writeBadPage(c, bad)
		}

		res, err := svc.List(c.UserContext(), skip, limit)
		if err != nil {
			return writeServiceError(c, entity, err)
		}

		items := res.Items
		if items == nil {
			items = []T{}
		}
		c.Set(TotalCountHeader, strconv.Itoa(res.Total))
		return c.JSON(items)
	}
}

// GetResource handles GET /{entity}/:id.
func GetResource[T any, I any](entity string, svc service.CRUDService[T, I]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}

		out, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, entity, err)
		}
		return c.JSON(out)
	}
}

// CreateResource handles POST /{entity}/ and answers 201 with the stored record.
func CreateResource[T any, I any](entity string, svc service.CRUDService[T, I]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in I
		if ok, err := bindBody(c, &in); !ok {
			return err
		}

		out, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, entity, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// UpdateResource handles PUT /{entity}/:id as a full replacement.
func UpdateResource[T any, I any](entity string, svc service.CRUDService[T, I]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}

		var in I
		if ok, err := bindBody(c, &in); !ok {
			return err
		}

		out, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, entity, err)
		}
		return c.JSON(out)
	}
}

// DeleteResource handles DELETE /{entity}/:id and returns the removed record.
func DeleteResource[T any, I any](entity string, svc service.CRUDService[T, I]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
		}

		out, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, entity, err)
		}
		return c.JSON(out)
	}
}

// RegisterResource mounts the five CRUD routes for one entity under prefix.
func RegisterResource[T any, I any](app fiber.Router, prefix, entity string, svc service.CRUDService[T, I]) {
	g := app.Group(prefix)
	g.Get("/", ListResource(entity, svc))
	g.Post("/", CreateResource(entity, svc))
	g.Get("/:id", GetResource(entity, svc))
	g.Put("/:id", UpdateResource(entity, svc))
	g.Delete("/:id", DeleteResource(entity, svc))
}

// bindBody decodes the JSON body into in and validates it.
// When ok is false the 400 response has already been written and err is the
// result of writing it.
func bindBody(c *fiber.Ctx, in any) (ok bool, err error) {
	if err := c.BodyParser(in); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a valid JSON object")
	}
	if details := validateStruct(in); details != nil {
		return false, writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "request body failed validation", details)
	}
	return true, nil
}
