package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación contra la tabla de usuarios del documento.
// Es una demo sin backend de identidad real: las credenciales se siembran
// localmente y los tokens son falsificables por diseño.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// seedUser credencial por defecto de la demo.
type seedUser struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

var defaultUsers = []seedUser{
	{Username: "admin", Password: "admin123", Name: "Administrador", Email: "admin@inventario.com", Role: entity.RoleAdmin},
	{Username: "empleado", Password: "emp123", Name: "Juan Pérez", Email: "juan@inventario.com", Role: entity.RoleEmpleado},
}

// EnsureDefaultUsers siembra la tabla de credenciales de la demo si los
// usuarios no existen todavía. Los passwords se hashean con bcrypt al sembrar.
func (uc *AuthUseCase) EnsureDefaultUsers() error {
	for _, su := range defaultUsers {
		existing, err := uc.userRepo.FindByUsername(su.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := uc.userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     su.Username,
			PasswordHash: string(hash),
			Name:         su.Name,
			Email:        su.Email,
			Role:         su.Role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
