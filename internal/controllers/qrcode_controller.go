package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"blogspace-be/internal/service"
)

const qrCodeSize = 256

type QRCodeController struct {
	blogService service.BlogService
	frontendURL string
}

func NewQRCodeController(blogService service.BlogService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		blogService: blogService,
		frontendURL: frontendURL,
	}
}

// BlogURL is the reader-facing address of a blog
func (qc *QRCodeController) BlogURL(id string) string {
	return qc.frontendURL + "/blog/" + id
}

// GenerateQRCode handles GET /api/blogs/:id/qrcode - a PNG linking to the blog page
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	blog, err := qc.blogService.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(qc.BlogURL(blog.ID), qrcode.Medium)
	if err != nil {
		respondError(c, fmt.Errorf("failed to generate QR code: %w", err))
		return
	}

	pngData, err := qrCode.PNG(qrCodeSize)
	if err != nil {
		respondError(c, fmt.Errorf("failed to encode QR code: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=blog-%s.png", blog.ID))
	c.Data(http.StatusOK, "image/png", pngData)
}
