// Package identity decodes what the delegated identity provider gives
// us: a signed token carrying a user name. There is no registration or
// password flow here; whoever issued the token owns authentication.
package identity

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
	"github.com/raddit-dev/raddit/internal/logger"
)

type Service interface {
	NewToken(userName string) (string, error)
	DecodeUser(jwtStr string) (domain.User, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) Service {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(userName string) (string, error) {
	claims := jwt.MapClaims{}
	claims["userName"] = userName
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("signing token", "err", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeUser(jwtStr string) (domain.User, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid claims", StatusCode: http.StatusUnauthorized}
	}
	userName, ok := claims["userName"].(string)
	if !ok || userName == "" {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid claims", StatusCode: http.StatusUnauthorized}
	}

	return domain.User{UserName: userName, IsSignedIn: true}, nil
}
