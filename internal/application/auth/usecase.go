package auth

import (
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y resolución de principal.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// HashPassword hashea un password con bcrypt (costo por defecto).
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica username/password y emite un bearer token.
// "Usuario desconocido" y "password incorrecto" colapsan en el mismo
// domain.ErrUnauthorized para no permitir enumeración de usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate resuelve un bearer token a su usuario (principal).
// Falla con domain.ErrUnauthorized si el token es inválido o si el usuario
// del subject ya no existe: un token de un usuario eliminado no sirve.
func (uc *AuthUseCase) Authenticate(token string) (*entity.User, error) {
	username, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// RequireAdmin verifica el segundo nivel de autorización: principal admin.
func RequireAdmin(user *entity.User) error {
	if user == nil {
		return domain.ErrUnauthorized
	}
	if !user.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}
