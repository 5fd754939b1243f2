package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil propio.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register crea la identidad y su perfil exactamente una vez: hashea password con
// bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.profileRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		CreatedAt:    time.Now(),
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return uc.loginResponse(profile)
}

// Login verifica credenciales y devuelve token + perfil.
// Email desconocido y password incorrecto responden igual (ErrUnauthorized).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loginResponse(profile)
}

// GetProfile devuelve el perfil propio (self-read).
func (uc *AuthUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile actualiza el perfil propio (self-update, solo full_name).
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, domain.ErrInvalidInput
		}
		profile.FullName = *in.FullName
	}
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (uc *AuthUseCase) loginResponse(profile *entity.Profile) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.FullName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Profile: *toProfileResponse(profile)}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
	}
}
