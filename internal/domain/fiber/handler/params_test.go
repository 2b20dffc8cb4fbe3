package handler

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldID(t *testing.T) {
	id, ok := fieldID("answer_42", "answer_")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = fieldID("note_42", "answer_")
	assert.False(t, ok)

	_, ok = fieldID("answer_abc", "answer_")
	assert.False(t, ok)
}

func postForm(t *testing.T, handler fiber.Handler, form url.Values) {
	t.Helper()
	app := fiber.New()
	app.Post("/", handler)

	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFormBoolAnswers(t *testing.T) {
	form := url.Values{}
	form.Set("answer_1", "on")
	form.Set("answer_2", "false")
	form.Set("note_1", "present")
	form.Set("unrelated", "x")

	postForm(t, func(c *fiber.Ctx) error {
		answers, notes := formBoolAnswers(c)
		assert.Equal(t, map[uint]bool{1: true, 2: false}, answers)
		assert.Equal(t, map[uint]string{1: "present"}, notes)
		return c.SendStatus(fiber.StatusOK)
	}, form)
}

func TestFormFloatAnswersReportsBadValues(t *testing.T) {
	form := url.Values{}
	form.Set("answer_1", "0.5")
	form.Set("answer_2", "abc")
	form.Set("note_1", "partial rollout")

	postForm(t, func(c *fiber.Ctx) error {
		values, notes, bad := formFloatAnswers(c)
		assert.Equal(t, map[uint]float64{1: 0.5}, values)
		assert.Equal(t, map[uint]string{1: "partial rollout"}, notes)
		assert.Equal(t, []string{"answer_2"}, bad)
		return c.SendStatus(fiber.StatusOK)
	}, form)
}
