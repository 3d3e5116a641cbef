package controllers

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"

	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// GetUserIDFromToken unwraps the bearer token into user id and role.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	return services.GetUserIDFromToken(tokenString)
}

// currentUser pulls the authenticated user from the request, either from
// the middleware-populated context or straight from the header.
func currentUser(c *gin.Context) (uint, int, bool) {
	if id, ok := c.Get("userID"); ok {
		role, _ := c.Get("userRole")
		return id.(uint), role.(int), true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, 0, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, userRole, err := GetUserIDFromToken(tokenString)
	if err != nil {
		return 0, 0, false
	}
	return userID, userRole, true
}

// uploadImage pushes a form file to cloudinary and returns the hosted URL.
func uploadImage(file multipart.File, folder string) (string, error) {
	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

func convertToUserInfo(user models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
	}
}

func convertToStayReviewResponse(review models.ReviewStay) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		Text:      review.Text,
		User:      convertToUserInfo(review.User),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func convertToDestinationReviewResponse(review models.ReviewDestination) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		Text:      review.Text,
		User:      convertToUserInfo(review.User),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// parsePagination reads page/limit query params with the defaults every
// list endpoint shares.
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) []T {
	start := page * limit
	end := start + limit
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		return items[start:]
	}
	return items[start:end]
}
