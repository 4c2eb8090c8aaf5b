package auth

import (
	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/hws/travel-api/internal/domain/repository"
	"github.com/hws/travel-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login y emisión de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash almacenado y emite un JWT con
// subject=email, user_id y roles. Email desconocido o password incorrecto
// devuelven ErrUnauthorized sin distinguir el caso. Un usuario sin roles no
// puede obtener sesión aunque las credenciales sean válidas: ErrNoRoleAssigned
// (política deliberada, no fallo de autenticación).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if len(user.Roles) == 0 {
		return nil, domain.ErrNoRoleAssigned
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.ID, user.RoleNames(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
