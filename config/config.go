package config

import (
	"log"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var JWT_KEY []byte

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal("JWT_KEY must be set in .env file")
	}

	JWT_KEY = []byte(key)
}

type JWTClaims struct {
	Username   string `json:"username"`
	EmployeeId int64  `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}
