package auth

import (
	"errors"
	"net/http"
	"time"

	"todoapp/dto"
	"todoapp/model"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SignInController(router *gin.Engine, db *gorm.DB) {
	router.POST("/api/signin", func(c *gin.Context) {
		Signin(c, db)
	})
}

func Signin(c *gin.Context, db *gorm.DB) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUserByEmail(db, request.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := issueTokens(c, db, user)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"user": gin.H{
			"id":    user.UserID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}

// issueTokens mints the access/refresh token pair and stores the hashed
// refresh token. On failure the error response has already been written.
func issueTokens(c *gin.Context, db *gorm.DB, user *model.User) (string, string, error) {
	accessToken, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create access token"})
		return "", "", err
	}

	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create refresh token"})
		return "", "", err
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash refresh token"})
		return "", "", err
	}

	now := time.Now()
	record := model.TokenRecord{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    now.Unix(),
		Revoked:      false,
		ExpiresIn:    int64((7 * 24 * time.Hour).Seconds()),
	}

	if err := db.Save(&record).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to store refresh token"})
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
