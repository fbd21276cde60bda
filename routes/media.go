package routes

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"complaint-service-server/config"
	"complaint-service-server/database"
	"complaint-service-server/middleware"
	"complaint-service-server/models"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// RegisterMediaRoutes adds the complaint photo evidence endpoint
func RegisterMediaRoutes(rg *gin.RouterGroup) {
	rg.POST("/complaints/:id/photos", UploadComplaintPhoto)
}

// UploadComplaintPhoto uploads an evidence image to Cloudinary and records
// its secure URL against the complaint
func UploadComplaintPhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid complaint ID"})
		return
	}

	user, _ := middleware.CurrentUser(c)

	var employee models.Employee
	if err := database.DB.Where("user_id = ?", user.ID).First(&employee).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Employee profile not found"})
		return
	}

	var complaint models.Complaint
	if err := database.DB.First(&complaint, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Complaint not found"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No photo provided"})
		return
	}
	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid photo"})
		return
	}

	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		log.Printf("❌ Cloudinary not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cloudinary not configured"})
		return
	}

	cld, err := cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName))
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cloudinary initialization failed"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read photo"})
		return
	}
	defer file.Close()

	uf := true
	up, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:         "complaints/" + strconv.Itoa(int(complaint.ID)),
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Photo upload failed for complaint %d: %v", complaint.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Photo upload failed"})
		return
	}

	photo := models.ComplaintPhoto{
		ComplaintID:  complaint.ID,
		UploadedByID: employee.ID,
		URL:          up.SecureURL,
	}
	if err := database.DB.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save photo"})
		return
	}

	log.Printf("✅ Photo uploaded for complaint %d by employee %d", complaint.ID, employee.ID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "photo": photo})
}
