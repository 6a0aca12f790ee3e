package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupRewriteApp() *fiber.App {
	app := fiber.New()
	app.Use(SubdomainRewrite("rooftop.", "/rooftop"))

	echo := func(c *fiber.Ctx) error {
		return c.SendString(c.Path())
	}
	app.Get("/", echo)
	app.Get("/p/:id", echo)
	app.Get("/rooftop", echo)
	app.Get("/rooftop/p/:id", echo)
	app.Get("/api/notes", echo)
	app.Get("/favicon.ico", echo)
	app.Get("/logo.png", echo)
	app.Get("/uploads/a.jpg", echo)

	return app
}

func requestPath(t *testing.T, app *fiber.App, url string) string {
	req := httptest.NewRequest("GET", url, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(body)
}

func TestSubdomainRewrite_RootToPrefix(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/rooftop", requestPath(t, app, "http://rooftop.example.com/"))
}

func TestSubdomainRewrite_PrependsPrefix(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/rooftop/p/42", requestPath(t, app, "http://rooftop.example.com/p/42"))
}

func TestSubdomainRewrite_AlreadyPrefixed(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/rooftop/p/42", requestPath(t, app, "http://rooftop.example.com/rooftop/p/42"))
}

func TestSubdomainRewrite_PrefixPathOnPrimaryDomain(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/rooftop/p/42", requestPath(t, app, "http://example.com/rooftop/p/42"))
}

func TestSubdomainRewrite_APIUntouched(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/api/notes", requestPath(t, app, "http://rooftop.example.com/api/notes"))
	assert.Equal(t, "/api/notes", requestPath(t, app, "http://example.com/api/notes"))
}

func TestSubdomainRewrite_PrimaryDomainUntouched(t *testing.T) {
	app := setupRewriteApp()
	assert.Equal(t, "/", requestPath(t, app, "http://example.com/"))
	assert.Equal(t, "/p/42", requestPath(t, app, "http://example.com/p/42"))
}

func TestSubdomainRewrite_AssetsUntouched(t *testing.T) {
	app := setupRewriteApp()

	for _, path := range []string{"/favicon.ico", "/logo.png", "/uploads/a.jpg"} {
		assert.Equal(t, path, requestPath(t, app, "http://rooftop.example.com"+path))
	}
}
