package auth

import (
	"context"
	"strings"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
	"github.com/kadosh-sales/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login por email contra la allow-list de líderes y el padrón de
// asesores. No hay contraseña: el producto funciona con correos autorizados.
type AuthUseCase struct {
	asesorRepo  repository.AsesorRepository
	emailsLider map[string]bool
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(asesorRepo repository.AsesorRepository, emailsLider []string, jwtCfg JWTConfig) *AuthUseCase {
	set := make(map[string]bool, len(emailsLider))
	for _, e := range emailsLider {
		set[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &AuthUseCase{asesorRepo: asesorRepo, emailsLider: set, jwtCfg: jwtCfg}
}

// Login resuelve el rol de un email y emite el JWT de sesión.
// Un asesor debe existir en el padrón y estar Activo; si está en la
// allow-list de líderes entra como Líder sin consultar el padrón.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	if uc.emailsLider[email] {
		token, err := jwt.Generate(uc.jwtCfg.Secret, LiderID, email, entity.RoleLider, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token:  token,
			Role:   entity.RoleLider,
			UserID: LiderID,
			Nombre: entity.RoleLider,
			Email:  email,
		}, nil
	}

	asesor, err := uc.asesorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !asesor.Activo() {
		return nil, domain.ErrAsesorInactivo
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, asesor.ID, email, entity.RoleAsesor, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := &dto.LoginResponse{
		Token:  token,
		Role:   entity.RoleAsesor,
		UserID: asesor.ID,
		Nombre: asesor.NombreCompleto,
		Email:  email,
	}
	ar := toAsesorResponse(asesor)
	resp.Asesor = &ar
	return resp, nil
}

func toAsesorResponse(a *entity.Asesor) dto.AsesorResponse {
	out := dto.AsesorResponse{
		ID:             a.ID,
		NombreCompleto: a.NombreCompleto,
		Email:          a.Email,
		FechaIngreso:   a.FechaIngreso.Format(dto.FechaLayout),
		Estatus:        a.Estatus,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.FechaNacimiento != nil {
		out.FechaNacimiento = a.FechaNacimiento.Format(dto.FechaLayout)
	}
	return out
}
