package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garantias/internal/application/auth"
	"garantias/internal/application/dto"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
	"garantias/pkg/config"
	pkgjwt "garantias/pkg/jwt"
	"garantias/pkg/logger"
)

type memUsuarios struct {
	porEmail map[string]*entity.Usuario
}

func newMemUsuarios() *memUsuarios {
	return &memUsuarios{porEmail: map[string]*entity.Usuario{}}
}

func (m *memUsuarios) Create(_ context.Context, u *entity.Usuario) error {
	cp := *u
	m.porEmail[u.Email] = &cp
	return nil
}

func (m *memUsuarios) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	u, ok := m.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUseCase(repo *memUsuarios) *auth.UseCase {
	cfg := config.JWTConfig{Secret: "segredo-de-teste", Expiration: 60, Issuer: "garantias-test"}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return auth.NewUseCase(repo, cfg, log)
}

func TestAuth_CadastroELogin(t *testing.T) {
	ctx := context.Background()
	repo := newMemUsuarios()
	uc := newAuthUseCase(repo)

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "  Dono@Oficina.com ",
		Senha: "senha-segura",
		Nome:  "Dono",
	})
	require.NoError(t, err)
	assert.Equal(t, "dono@oficina.com", user.Email, "e-mail normalizado")
	assert.True(t, user.Ativo)
	assert.NotEmpty(t, user.ID)

	// a senha nunca fica em claro no repositório
	gravado := repo.porEmail["dono@oficina.com"]
	require.NotNil(t, gravado)
	assert.NotContains(t, gravado.SenhaHash, "senha-segura")

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "dono@oficina.com", Senha: "senha-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	userID, nome, err := pkgjwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Dono", nome)
}

func TestAuth_LoginRecusado(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUseCase(newMemUsuarios())

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Senha: "senha-segura"})
	require.NoError(t, err)

	// senha errada e usuário inexistente produzem o mesmo erro
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Senha: "errada-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ninguem@b.com", Senha: "tanto-faz"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_CadastroInvalido(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUseCase(newMemUsuarios())

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "sem-arroba", Senha: "senha-segura"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Senha: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Senha: "senha-segura"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "A@B.com", Senha: "outra-senha-8"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
