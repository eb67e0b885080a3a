package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/catalog"
)

// Product handlers read from the static catalog only; there is nothing to
// create or mutate.
type ProductController struct{}

func NewProductController() *ProductController {
	return &ProductController{}
}

// GetProducts lists the catalog, optionally narrowed by the category or
// search query parameters.
func (c *ProductController) GetProducts(ctx *gin.Context) {
	if query := ctx.Query("search"); query != "" {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"products": catalog.SearchProducts(query)})
		return
	}
	if category := ctx.Query("category"); category != "" {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"products": catalog.ProductsByCategory(category)})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": catalog.Products()})
}

// GetProduct returns a single catalog entry by id.
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}
