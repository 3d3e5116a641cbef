package controllers

import (
	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"
	"travelmore/validator"

	"github.com/gin-gonic/gin"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Residency:    user.Residency,
		Role:         user.Role,
		Avatar:       user.Avatar,
		IsVerified:   user.IsVerified,
		SavedStayIDs: user.SavedStayIDs,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// GetProfile returns the authenticated user's own record.
func GetProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateUser updates the authenticated user's profile fields.
func UpdateUser(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if input.PhoneNumber != "" {
		if err := validator.ValidatePhone(input.PhoneNumber); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Residency != "" {
		user.Residency = input.Residency
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// SaveStay bookmarks a stay on the user's profile.
func SaveStay(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.SaveStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var stay models.Stay
	if err := config.DB.First(&stay, input.StayID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	for _, id := range user.SavedStayIDs {
		if uint(id) == input.StayID {
			response.Success(c, convertToUserResponse(user))
			return
		}
	}

	user.SavedStayIDs = append(user.SavedStayIDs, int64(input.StayID))
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
