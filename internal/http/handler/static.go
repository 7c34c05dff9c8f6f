package handler

import (
	"errors"
	"net/url"
	"path"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"fixtureplanner/internal/assets"
)

// ServeIndex serves the entry document of the browser fixture generator.
func ServeIndex(store assets.Store, indexFile string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendAsset(c, store, indexFile)
	}
}

// ServeAsset serves any other file under the asset root, e.g. GET /css/app.css.
// Fiber hands the wildcard over still percent-encoded, so it is decoded here.
func ServeAsset(store assets.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("*"))
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
		}
		return sendAsset(c, store, name)
	}
}

func sendAsset(c *fiber.Ctx, store assets.Store, name string) error {
	rc, info, err := store.Open(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
		}
		return err
	}

	c.Set(fiber.HeaderContentType, contentType(name, info.ContentType))
	if info.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
	}
	// fasthttp closes the stream once the body is written.
	return c.SendStream(rc, int(info.Size))
}

// contentType prefers the extension's MIME type; the stored type is used when the
// extension is unknown, since object stores often default everything to octet-stream.
func contentType(name, stored string) string {
	if ext := path.Ext(name); ext != "" {
		if ct := utils.GetMIME(ext); ct != fiber.MIMEOctetStream {
			return ct
		}
	}
	if stored != "" {
		return stored
	}
	return fiber.MIMEOctetStream
}
