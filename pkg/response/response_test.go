package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShapes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return ResponseOK(c) })
	app.Get("/data", func(c *fiber.Ctx) error { return ResponseOKWithData(c, "payload") })
	app.Get("/created", func(c *fiber.Ctx) error { return ResponseCreated(c, "payload") })
	app.Get("/error", func(c *fiber.Ctx) error { return ResponseError(c, "boom", fiber.StatusBadRequest) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, float64(200), env["code"])
	assert.Nil(t, env["data"])

	resp, err = app.Test(httptest.NewRequest("GET", "/data", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "payload", env["data"])

	resp, err = app.Test(httptest.NewRequest("GET", "/created", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, float64(201), env["code"])

	resp, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "boom", env["errorMessage"])
}
