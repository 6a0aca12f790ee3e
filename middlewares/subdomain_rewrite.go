package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var staticAssetPattern = regexp.MustCompile(`\.(png|jpg|jpeg|gif|webp|svg|ico|css|js|map)$`)

var assetPrefixes = []string{
	"/uploads",
	"/metrics",
	"/health",
	"/favicon",
	"/robots",
	"/sitemap",
}

// SubdomainRewrite maps requests arriving on the feed subdomain onto the
// internal path prefix, e.g. rooftop.example.com/p/42 -> /rooftop/p/42.
// API and static asset paths are never rewritten.
func SubdomainRewrite(subdomain, prefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// API routes always keep their original path so the prefix can
		// never corrupt route matching.
		if strings.HasPrefix(path, "/api") {
			return c.Next()
		}
		if isAssetPath(path) {
			return c.Next()
		}

		isFeed := strings.HasPrefix(c.Hostname(), subdomain) || strings.HasPrefix(path, prefix)
		if !isFeed {
			return c.Next()
		}

		if path == "/" {
			c.Path(prefix)
			return c.Next()
		}
		// Already prefixed; avoid /rooftop/rooftop/*.
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}

		c.Path(prefix + path)
		return c.Next()
	}
}

func isAssetPath(path string) bool {
	for _, p := range assetPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return staticAssetPattern.MatchString(path)
}
