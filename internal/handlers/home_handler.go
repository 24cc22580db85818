package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the static landing page.
type HomeHandler struct {
	publicDir string
}

// NewHomeHandler creates a HomeHandler serving assets from publicDir.
func NewHomeHandler(publicDir string) *HomeHandler {
	return &HomeHandler{publicDir: publicDir}
}

// HandleHome sends the landing page, or a diagnostic HTML fragment naming the
// path the server looked at when the asset is missing.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	indexPath := filepath.Join(h.publicDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		log.Printf("index.html not found at %s: %v", indexPath, err)
		return c.Status(fiber.StatusNotFound).Type("html").SendString(fmt.Sprintf(`
			<div style="text-align: center; font-family: sans-serif;">
				<h1>index.html not found!</h1>
				<p>The server looked for it here:</p>
				<code style="background: #eee; padding: 5px;">%s</code>
				<p>Make sure the <b>public</b> directory exists and the file is inside.</p>
			</div>
		`, indexPath))
	}
	return c.SendFile(indexPath)
}
