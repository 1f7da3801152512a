package usecases

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indica falha de usuário/senha no login.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrInvalidToken indica token ausente, malformado, expirado ou com
	// assinatura inválida.
	ErrInvalidToken = errors.New("token inválido")
)

// AuthUseCase autentica a identidade administrativa única. As credenciais
// chegam injetadas na construção, resolvidas uma vez na partida do processo.
type AuthUseCase struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewAuthUseCase(adminUsername, adminPassword, jwtSecret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}
}

// Login valida as credenciais e emite um bearer token HS256 com a
// identidade do admin.
func (uc *AuthUseCase) Login(input LoginInput) (string, *entities.AdminUser, error) {
	if input.Username != uc.adminUsername || !uc.checkPassword(input.Password) {
		return "", nil, ErrInvalidCredentials
	}

	user := &entities.AdminUser{
		ID:       "admin",
		Username: uc.adminUsername,
		Role:     "admin",
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(uc.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyToken confere assinatura e expiração e devolve a identidade contida
// no token.
func (uc *AuthUseCase) VerifyToken(tokenString string) (*entities.AdminUser, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || username == "" {
		return nil, ErrInvalidToken
	}

	return &entities.AdminUser{
		ID:       sub,
		Username: username,
		Role:     role,
	}, nil
}

// checkPassword aceita tanto hash bcrypt quanto senha em texto puro na
// configuração; a comparação em texto puro é de tempo constante.
func (uc *AuthUseCase) checkPassword(password string) bool {
	if strings.HasPrefix(uc.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(uc.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(uc.adminPassword), []byte(password)) == 1
}
