package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/response"
)

// Page describes one rendered HTML route.
type Page struct {
	Path     string
	Template string
	Title    string
}

// Pages lists every HTML route served by PageHandler.
var Pages = []Page{
	{Path: "/", Template: "index.html", Title: "Inicio"},
	{Path: "/dashboard", Template: "dashboard.html", Title: "Panel"},
	{Path: "/login", Template: "login.html", Title: "Iniciar sesión"},
	{Path: "/perfil", Template: "perfil.html", Title: "Perfil"},
	{Path: "/busqueda", Template: "busqueda.html", Title: "Búsqueda"},
	{Path: "/notificaciones", Template: "notificaciones.html", Title: "Notificaciones"},
}

// PageHandler renders the HTML pages and the not-found page.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Render returns a handler that renders p.
func (h *PageHandler) Render(p Page) gin.HandlerFunc {
	current := strings.TrimSuffix(p.Template, ".html")
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, p.Template, gin.H{
			"Title":       p.Title,
			"CurrentPage": current,
		})
	}
}

// NotFound answers unknown routes: JSON for /api paths, the 404 page otherwise.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Title":       "Página no encontrada",
		"CurrentPage": "",
	})
}
