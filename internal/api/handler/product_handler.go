package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threadline/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products — the public catalog listing.
//
// @Summary      List all products, newest first
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Create handles POST /products — adds a catalog product from a multipart
// form carrying category, subTypes and an image file.
//
// @Summary      Add a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        category  formData  string  true  "Product category"
// @Param        subTypes  formData  string  true  "Comma-separated sub-types (repeatable)"
// @Param        image     formData  file    true  "Product image (JPEG, PNG or WebP)"
// @Success      201  {object}  productMessageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	input := ports.AddProductInput{SubTypes: form.Value["subTypes"]}
	if v := form.Value["category"]; len(v) > 0 {
		input.Category = v[0]
	}
	if files := form.File["image"]; len(files) > 0 {
		upload, src, err := toImageUpload(files[0])
		if err != nil {
			return err
		}
		defer src.Close()
		input.Image = upload
	}

	product, err := h.service.AddProduct(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productMessageResponse{
		Message: "product added successfully",
		Product: toProductResponse(product),
	})
}

// Update handles PUT /products/:id — replaces only the fields supplied in
// the multipart form; a fresh image upload replaces the stored reference.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Product id (24-char hex)"
// @Param        category  formData  string  false  "Product category"
// @Param        subTypes  formData  string  false  "Comma-separated sub-types (repeatable)"
// @Param        image     formData  file    false  "Replacement image"
// @Success      200  {object}  productMessageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	var input ports.UpdateProductInput
	if v := form.Value["category"]; len(v) > 0 {
		input.Category = &v[0]
	}
	input.SubTypes = form.Value["subTypes"]
	if files := form.File["image"]; len(files) > 0 {
		upload, src, err := toImageUpload(files[0])
		if err != nil {
			return err
		}
		defer src.Close()
		input.Image = upload
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "product updated successfully",
		Product: toProductResponse(product),
	})
}

// Delete handles DELETE /products/:id. Deleting the same id twice fails
// with 404 on the second call.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id (24-char hex)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted successfully"})
}
