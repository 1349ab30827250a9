package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/internal/domain/repository"
	"garantias/pkg/config"
	"garantias/pkg/jwt"
	"garantias/pkg/logger"
)

// UseCase implementa login e cadastro de usuários.
type UseCase struct {
	repo repository.UsuarioRepository
	jwt  config.JWTConfig
	log  *logger.Logger
}

func NewUseCase(repo repository.UsuarioRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, jwt: jwtCfg, log: log}
}

// Login valida as credenciais e emite o token de sessão. Credencial errada e
// usuário inexistente produzem o mesmo erro, para não vazar quais e-mails existem.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Senha == "" {
		return nil, fmt.Errorf("%w: e-mail e senha são obrigatórios", domain.ErrInvalidInput)
	}
	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Ativo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(req.Senha)); err != nil {
		uc.log.Warn().Str("email", email).Msg("tentativa de login com senha incorreta")
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwt.Secret, u.ID, u.Nome, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, fmt.Errorf("gerando token: %w", err)
	}
	uc.log.Info().Str("user_id", u.ID).Msg("login efetuado")
	return &dto.LoginResponse{
		Token: token,
		User:  userToResponse(u),
	}, nil
}

// Register cadastra um novo usuário com a senha protegida por bcrypt.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: e-mail inválido", domain.ErrInvalidInput)
	}
	if len(req.Senha) < 8 {
		return nil, fmt.Errorf("%w: senha deve ter ao menos 8 caracteres", domain.ErrInvalidInput)
	}
	existente, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gerando hash de senha: %w", err)
	}
	u := &entity.Usuario{
		ID:        uuid.NewString(),
		Email:     email,
		SenhaHash: string(hash),
		Nome:      req.Nome,
		Ativo:     true,
		CriadoEm:  time.Now(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("criando usuário: %w", err)
	}
	uc.log.Info().Str("user_id", u.ID).Msg("usuário cadastrado")
	resp := userToResponse(u)
	return &resp, nil
}

func userToResponse(u *entity.Usuario) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nome:     u.Nome,
		Ativo:    u.Ativo,
		CriadoEm: u.CriadoEm,
	}
}
