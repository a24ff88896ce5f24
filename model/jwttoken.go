package model

import "github.com/golang-jwt/jwt/v5"

type TokenRecord struct {
	UserID       string `gorm:"primaryKey;size:36" json:"userId"`
	RefreshToken string `gorm:"size:100;not null" json:"refreshToken"` // bcrypt hash, never the raw token
	CreatedAt    int64  `json:"createdAt"`                             // creation time in seconds
	Revoked      bool   `json:"revoked"`
	ExpiresIn    int64  `json:"expiresIn"` // expiration in seconds
}

func (TokenRecord) TableName() string {
	return "tokens"
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
