package v1

import (
	"reflect"

	"github.com/gofiber/fiber/v3"
)

type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

func Register(r fiber.Router, auth fiber.Handler, registrars ...RouteRegistrar) {
	if r == nil {
		return
	}

	protected := r
	if auth != nil {
		protected = r.Group("", auth)
	}
	for _, reg := range registrars {
		if isNil(reg) {
			continue
		}
		reg.RegisterRoutes(protected)
	}
}

// isNil catches typed nil handlers passed through the interface.
func isNil(reg RouteRegistrar) bool {
	if reg == nil {
		return true
	}
	v := reflect.ValueOf(reg)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
