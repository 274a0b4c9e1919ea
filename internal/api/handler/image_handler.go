package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threadline/catalog-api/internal/core/ports"
)

// ImageHandler serves stored product images at their reference URIs.
type ImageHandler struct {
	service ports.CatalogService
}

func NewImageHandler(service ports.CatalogService) *ImageHandler {
	return &ImageHandler{service: service}
}

// Get handles GET /images/:id — the target of the stable reference URI
// written into Product.Image.
//
// @Summary      Fetch a stored product image
// @Tags         images
// @Produce      image/jpeg
// @Param        id  path  string  true  "Image id (24-char hex)"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	img, err := h.service.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}
