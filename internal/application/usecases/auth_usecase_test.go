package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_LoginAndVerify(t *testing.T) {
	uc := NewAuthUseCase("admin", "s3nha-forte", "segredo-de-teste", time.Hour)

	token, user, err := uc.Login(LoginInput{Username: "admin", Password: "s3nha-forte"})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)

	verified, err := uc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user, verified)
}

func TestAuthUseCase_RejectsBadCredentials(t *testing.T) {
	uc := NewAuthUseCase("admin", "s3nha-forte", "segredo-de-teste", time.Hour)

	_, _, err := uc.Login(LoginInput{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = uc.Login(LoginInput{Username: "outro", Password: "s3nha-forte"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUseCase_AcceptsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	uc := NewAuthUseCase("admin", string(hash), "segredo-de-teste", time.Hour)

	_, _, err = uc.Login(LoginInput{Username: "admin", Password: "s3nha-forte"})
	assert.NoError(t, err)

	_, _, err = uc.Login(LoginInput{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUseCase_RejectsTamperedToken(t *testing.T) {
	uc := NewAuthUseCase("admin", "s3nha-forte", "segredo-de-teste", time.Hour)
	outro := NewAuthUseCase("admin", "s3nha-forte", "outro-segredo", time.Hour)

	token, _, err := outro.Login(LoginInput{Username: "admin", Password: "s3nha-forte"})
	assert.NoError(t, err)

	_, err = uc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.VerifyToken("nem-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUseCase_RejectsExpiredToken(t *testing.T) {
	uc := NewAuthUseCase("admin", "s3nha-forte", "segredo-de-teste", -time.Minute)

	token, _, err := uc.Login(LoginInput{Username: "admin", Password: "s3nha-forte"})
	assert.NoError(t, err)

	_, err = uc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
