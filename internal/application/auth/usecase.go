// Package auth implementa o login do administrador único da API.
// Não há tabela de usuários: as credenciais vêm da configuração (usuário e
// hash bcrypt da senha) e o acesso de leitura usa o papel "leitor".
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/esc4n0rx/hbtracker-api/internal/application/dto"
	"github.com/esc4n0rx/hbtracker-api/internal/domain"
	"github.com/esc4n0rx/hbtracker-api/pkg/config"
	"github.com/esc4n0rx/hbtracker-api/pkg/jwt"
)

// RoleAdmin dá acesso às operações destrutivas (limpar ledger e inventário).
const RoleAdmin = "admin"

// UseCase valida credenciais e emite tokens JWT.
type UseCase struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
}

// NewUseCase constrói o caso de uso de autenticação.
func NewUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{admin: admin, jwt: jwtCfg}
}

// Login valida usuário e senha contra a configuração e emite um JWT com papel
// admin. Credenciais erradas devolvem domain.ErrUnauthorized sem distinguir
// usuário de senha.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Usuario == "" || req.Senha == "" {
		return nil, fmt.Errorf("%w: usuário e senha são obrigatórios", domain.ErrInvalidInput)
	}
	if uc.admin.PasswordHash == "" {
		return nil, fmt.Errorf("login desabilitado: ADMIN_PASSWORD_HASH não configurado")
	}
	if req.Usuario != uc.admin.User {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(req.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwt.Secret, req.Usuario, RoleAdmin, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, fmt.Errorf("erro gerando token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiraMinutos: uc.jwt.Expiration}, nil
}
