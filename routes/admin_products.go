package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaint-service-server/cache"
	"complaint-service-server/database"
	"complaint-service-server/models"
	"complaint-service-server/utils"
)

// RegisterAdminProductRoutes registers product management under /products
func RegisterAdminProductRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", GetAllProducts)
	rg.POST("/products", CreateProduct)
	rg.GET("/products/:id", GetProductById)
	rg.PUT("/products/:id", UpdateProduct)
	rg.DELETE("/products/:id", DeleteProduct)
}

type productRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Tax   float64 `json:"tax" binding:"gte=0"` // in percent
}

// GetAllProducts returns all products with their tax-inclusive totals
func GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	list := make([]gin.H, 0, len(products))
	for i := range products {
		list = append(list, gin.H{
			"id":          products[i].ID,
			"name":        products[i].Name,
			"price":       products[i].Price,
			"tax":         products[i].Tax,
			"total_price": products[i].TotalPrice(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": list})
}

// GetProductById returns a single product
func GetProductById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"product":     product,
		"total_price": product.TotalPrice(),
	})
}

// CreateProduct creates a product
func CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
		Tax:   req.Tax,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates a product
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	updates := map[string]interface{}{
		"name":  req.Name,
		"price": req.Price,
		"tax":   req.Tax,
	}
	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct deletes a product and, through the cascade, its complaints
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
