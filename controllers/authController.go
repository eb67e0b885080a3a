package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/storefront"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid email or password"
	msgMissingSignupField    = "all fields are required"
	msgPasswordTooShort      = "password must be at least 6 characters"
	msgInvalidEmail          = "invalid email address"
	msgFailedToGenerateToken = "failed to generate token"
	msgLoggedOut             = "logged out"
	msgNotLoggedIn           = "not logged in"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// credentialErrorMessage maps a tagged credential failure to the message
// shown to the shopper.
func credentialErrorMessage(err error) string {
	switch {
	case errors.Is(err, storefront.ErrTooShort):
		return msgPasswordTooShort
	case errors.Is(err, storefront.ErrInvalidFormat):
		return msgInvalidEmail
	case errors.Is(err, storefront.ErrMissingField):
		return msgMissingSignupField
	}
	return msgInvalidCredentials
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

type AuthController struct {
	Auth *storefront.Auth
}

func NewAuthController(auth *storefront.Auth) *AuthController {
	return &AuthController{Auth: auth}
}

// Login checks the credentials, persists the session user and returns it
// together with a signed token.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.Auth.Login(loginData.Email, loginData.Password)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, credentialErrorMessage(err))
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		zap.S().Errorf("JWT generation error: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString, "user": user})
}

// Signup registers the shopper and signs them in.
func (c *AuthController) Signup(ctx *gin.Context) {
	var signupData models.SignupData
	if err := ctx.ShouldBindJSON(&signupData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.Auth.Signup(signupData.Name, signupData.Email, signupData.Phone, signupData.Password)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, credentialErrorMessage(err))
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		zap.S().Errorf("JWT generation error: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"token": tokenString, "user": user})
}

// Logout clears the current session. Logging out twice is not an error.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.Auth.Logout()
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

// GetCurrentUser returns the signed-in shopper, if any.
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	user, ok := c.Auth.CurrentUser()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
