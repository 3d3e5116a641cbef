package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"travelmore/config"
	"travelmore/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var (
	secretKey        = []byte(os.Getenv("JWT_SECRET"))
	refreshSecretKey = []byte(os.Getenv("JWT_REFRESH_SECRET"))
)

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendVerificationEmail(email string, token string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	verifyURL := fmt.Sprintf("%s/api/v1/verify-email?token=%s", os.Getenv("APP_URL"), token)
	message := []byte("Subject: Verify your TravelMore account\r\n" +
		"\r\n" +
		"Welcome to TravelMore!\r\n" +
		"Open the link below to verify your email address:\r\n" +
		verifyURL + "\r\n")

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
}

// SendBookingEmail mails the booking confirmation to the guest.
func SendBookingEmail(email string, bookingID uint, totalPrice string, arrivalDate, departureDate string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	message := []byte("Subject: Your TravelMore booking confirmation\r\n" +
		"\r\n" +
		fmt.Sprintf("Booking #%d is confirmed.\r\n", bookingID) +
		fmt.Sprintf("Arrival: %s\r\nDeparture: %s\r\n", arrivalDate, departureDate) +
		fmt.Sprintf("Total price: %s\r\n", totalPrice))

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateToken signs a JWT carrying the user's id and role.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

// ValidateRefreshToken checks a refresh token's signature and expiry and
// returns the identity it carries.
func ValidateRefreshToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return refreshSecretKey, nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.New("invalid refresh token")
	}
	return claims.UserInfo, nil
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie("accessToken", accessToken, 60*60*24*3, "/", "", false, true)
}

// CreateUser registers a user, hashes the password and mails a
// verification code.
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("email and password must not be empty")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existingEmail.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	token, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		Username:      input.Username,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Residency:     input.Residency,
		Role:          input.Role,
		IsVerified:    false,
		Code:          token,
		CodeCreatedAt: time.Now(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, token); err != nil {
		return user, err
	}

	return user, nil
}

// CreateGoogleUser provisions an account from a verified Google id token.
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	existing, err := GetUserByEmail(email)
	if err == nil {
		return existing, nil
	}

	user := models.User{
		Email:      email,
		Username:   name,
		Avatar:     avatar,
		IsVerified: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
