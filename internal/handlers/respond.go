package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Guards are the authorization middlewares handlers attach to their routes.
type Guards struct {
	// Auth requires a valid bearer token.
	Auth fiber.Handler
	// Admin requires the authenticated user to be an administrator. Chain it after Auth.
	Admin fiber.Handler
	// Optional attaches the identity when present and never rejects.
	Optional fiber.Handler
}

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match the request body.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind parses the JSON body into dst and validates it. Failures come back as
// validation errors ready for respondError.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		log.WithField("path", c.Path()).Debugf("Error parsing request body: %v", err)
		return &services.ValidationError{Message: "Invalid request body"}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields := make([]string, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, e.Field())
		}
		return &services.ValidationError{Message: fmt.Sprintf("Invalid or missing fields: %s", strings.Join(fields, ", "))}
	}
	return nil
}

// respondError converts a service error into the JSON error response.
// resource names the entity in 404 messages, e.g. "Pet" gives "Pet not found".
func respondError(c *fiber.Ctx, err error, resource string) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": ve.Message})
	case services.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": resource + " not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"msg": "Access denied"})
	}

	log.WithFields(log.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
	}).Errorf("Request failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server error"})
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"msg": msg})
}
