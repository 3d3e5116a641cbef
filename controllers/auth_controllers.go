package controllers

import (
	"os"
	"strings"
	"time"

	"travelmore/config"
	"travelmore/dto"
	"travelmore/models"
	"travelmore/response"
	"travelmore/services"
	"travelmore/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	refreshToken, err := services.GenerateToken(userInfo, 60*24*30, false)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		Residency:    user.Residency,
		UserAvatar:   user.Avatar,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":    userResponse,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh access token.
func RefreshToken(c *gin.Context) {
	var input dto.RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Refresh token required")
		return
	}

	userInfo, err := services.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"accessToken": accessToken})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidate := models.User{
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		Username:    input.Username,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Residency:   input.Residency,
		Role:        input.Role,
	}
	if err := validator.ValidateUser(&candidate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(candidate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, user)
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Verification code required")
		return
	}

	var user models.User
	result := config.DB.Where("code = ?", code).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Email verification failed")
		return
	}

	// Codes expire after 5 minutes.
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "The verification code has expired. Please request a new one.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	config.DB.Save(&user)

	response.Success(c, user)
}

func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	avatar, _ := payload.Claims["picture"].(string)

	user, err := services.CreateGoogleUser(name, email, avatar)
	if err != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   user,
		"accessToken": accessToken,
	})
}
