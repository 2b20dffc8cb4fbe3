package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func companyIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidParam(c, "companyId")
}

// formBoolAnswers collects answer_<id> checkbox fields from a form post.
// Present means true; notes arrive as note_<id>.
func formBoolAnswers(c *fiber.Ctx) (map[uint]bool, map[uint]string) {
	answers := map[uint]bool{}
	notes := map[uint]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if id, ok := fieldID(k, "answer_"); ok {
			v := strings.ToLower(string(value))
			answers[id] = v == "on" || v == "true" || v == "1"
		}
		if id, ok := fieldID(k, "note_"); ok {
			notes[id] = string(value)
		}
	})
	return answers, notes
}

// formFloatAnswers collects answer_<id> numeric fields from a form post.
// Unparsable values come back in bad so the caller can reject the request.
func formFloatAnswers(c *fiber.Ctx) (values map[uint]float64, notes map[uint]string, bad []string) {
	values = map[uint]float64{}
	notes = map[uint]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if id, ok := fieldID(k, "answer_"); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(string(value)), 64)
			if err != nil {
				bad = append(bad, k)
				return
			}
			values[id] = v
		}
		if id, ok := fieldID(k, "note_"); ok {
			notes[id] = string(value)
		}
	})
	return values, notes, bad
}

// tenantParams resolves the company id plus one scoped resource id. A
// malformed id comes back as a 400 fiber error for the app error handler.
func tenantParams(c *fiber.Ctx, idName, label string) (companyID, id uuid.UUID, err error) {
	companyID, err = companyIDParam(c)
	if err != nil {
		return companyID, id, fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}
	id, err = uuidParam(c, idName)
	if err != nil {
		return companyID, id, fiber.NewError(fiber.StatusBadRequest, "invalid "+label+" id")
	}
	return companyID, id, nil
}

func fieldID(key, prefix string) (uint, bool) {
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(key, prefix), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
