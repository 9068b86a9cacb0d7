package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"biblioteca/pkg/logger"
	"biblioteca/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthSession is the token pair minted by login and rotated by refresh. It
// is owned by the Client; the only writers are ExecutarLogin and
// RenovarToken, both serialized by the Client's mutex.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	// ExpiraEm is the access token's exp claim, zero when the token carries
	// none. Informational: requests are attempted regardless and a 401
	// drives reauthentication.
	ExpiraEm time.Time
}

// Autenticada reports whether the session holds an access token.
func (s AuthSession) Autenticada() bool { return s.AccessToken != "" }

// Expirada reports whether the access token's recorded expiry has passed.
func (s AuthSession) Expirada() bool {
	return !s.ExpiraEm.IsZero() && time.Now().After(s.ExpiraEm)
}

type credenciaisLogin struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type registroPayload struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type respostaTokens struct {
	Tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"tokens"`
}

// Autenticar swaps in new credentials at runtime and performs a login.
func (c *Client) Autenticar(ctx context.Context, email, senha string) error {
	c.mu.Lock()
	c.email = email
	c.senha = senha
	c.mu.Unlock()

	return c.ExecutarLogin(ctx)
}

// ExecutarLogin posts the configured credentials to /auth/login and stores
// the returned token pair. A 401 triggers one automatic self-registration
// attempt (201 and 409 both mean "account usable") followed by a single
// login retry. The login request itself never carries a bearer token.
func (c *Client) ExecutarLogin(ctx context.Context) error {
	c.mu.Lock()
	credenciais := credenciaisLogin{Email: c.email, Senha: c.senha}
	c.mu.Unlock()

	if credenciais.Email == "" || credenciais.Senha == "" {
		return serrors.With(serrors.ErrValidation, "credenciais de acesso não configuradas")
	}

	dados, err := c.executar(ctx, http.MethodPost, "/auth/login", nil, credenciais, false)
	if err != nil && errors.Is(err, serrors.ErrUnauthorized) && c.tentarRegistroAutomatico(ctx, credenciais) {
		dados, err = c.executar(ctx, http.MethodPost, "/auth/login", nil, credenciais, false)
	}
	if err != nil {
		logger.Error(ctx, "falha no login", zap.Error(err))

		return fmt.Errorf("falha no login: %w", err)
	}

	tokens, err := extrairTokens(dados)
	if err != nil {
		return err
	}
	c.atualizarTokens(tokens.Tokens.AccessToken, tokens.Tokens.RefreshToken)

	return nil
}

// RenovarToken exchanges the stored refresh token for a new access token.
// When no refresh token is held it fails immediately; on any other failure
// the refresh token is considered exhausted for this cycle and a full login
// is the caller's fallback.
func (c *Client) RenovarToken(ctx context.Context) error {
	refresh := c.Sessao().RefreshToken
	if refresh == "" {
		return serrors.With(serrors.ErrUnauthorized, "nenhum refresh token disponível")
	}

	dados, err := c.executar(ctx, http.MethodPost, "/auth/refresh", nil, refreshPayload{RefreshToken: refresh}, false)
	if err != nil {
		logger.Warn(ctx, "falha ao renovar token", zap.Error(err))

		return fmt.Errorf("falha ao renovar token: %w", err)
	}

	tokens, err := extrairTokens(dados)
	if err != nil {
		return err
	}
	c.atualizarTokens(tokens.Tokens.AccessToken, tokens.Tokens.RefreshToken)

	return nil
}

// TentarReautenticacao is the recovery path after a 401: refresh first, full
// login as fallback. A refresh token that is itself an expired JWT cannot
// succeed, so that round-trip is skipped.
func (c *Client) TentarReautenticacao(ctx context.Context) error {
	sessao := c.Sessao()
	if sessao.Expirada() {
		logger.Debug(ctx, "access token expirado", zap.Time("expira_em", sessao.ExpiraEm))
	}

	if exp := expiracaoToken(sessao.RefreshToken); !exp.IsZero() && time.Now().After(exp) {
		logger.Debug(ctx, "refresh token expirado, partindo para login", zap.Time("expira_em", exp))

		return c.ExecutarLogin(ctx)
	}

	if err := c.RenovarToken(ctx); err == nil {
		return nil
	}

	return c.ExecutarLogin(ctx)
}

// LimparSessao discards the stored tokens, returning to the anonymous state.
func (c *Client) LimparSessao() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessao = AuthSession{}
}

// tentarRegistroAutomatico registers the configured operator account when a
// login fails for lack of one. 201 (created) and 409 (already exists) both
// allow the login retry to proceed.
func (c *Client) tentarRegistroAutomatico(ctx context.Context, credenciais credenciaisLogin) bool {
	payload := registroPayload{
		Email: credenciais.Email,
		Senha: credenciais.Senha,
		Nome:  nomePadrao(credenciais.Email),
	}

	_, err := c.executar(ctx, http.MethodPost, "/auth/register", nil, payload, false)
	if err == nil {
		logger.Info(ctx, "registro automático criado", zap.String("email", credenciais.Email))

		return true
	}
	if errors.Is(err, serrors.ErrConflict) {
		logger.Info(ctx, "usuário já existente, prosseguindo com login", zap.String("email", credenciais.Email))

		return true
	}

	logger.Error(ctx, "registro automático falhou", zap.Error(err))

	return false
}

// atualizarTokens stores a fresh token pair. An empty refresh token keeps
// the previous one, since the refresh endpoint may rotate only the access
// token.
func (c *Client) atualizarTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessao.AccessToken = access
	if refresh != "" {
		c.sessao.RefreshToken = refresh
	}
	c.sessao.ExpiraEm = expiracaoToken(access)
}

// extrairTokens reads the {tokens:{accessToken,refreshToken}} envelope out
// of an auth response payload, failing when no access token is present.
func extrairTokens(payload map[string]any) (respostaTokens, error) {
	var tokens respostaTokens

	bruto, ok := payload["tokens"].(map[string]any)
	if !ok {
		return tokens, serrors.With(serrors.ErrInternal, "resposta de autenticação sem tokens")
	}
	if s, ok := bruto["accessToken"].(string); ok {
		tokens.Tokens.AccessToken = s
	}
	if s, ok := bruto["refreshToken"].(string); ok {
		tokens.Tokens.RefreshToken = s
	}
	if tokens.Tokens.AccessToken == "" {
		return tokens, serrors.With(serrors.ErrInternal, "resposta de autenticação sem accessToken")
	}

	return tokens, nil
}

// expiracaoToken reads the exp claim off a JWT without verifying the
// signature — the client is not the token's audience validator, it only
// wants the expiry for logging and refresh decisions. Opaque (non-JWT)
// tokens yield a zero time.
func expiracaoToken(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// nomePadrao derives a display name for auto-registration from the e-mail
// local part: dots become spaces, each word is capitalized.
func nomePadrao(email string) string {
	local := email
	if i := strings.Index(email, "@"); i > 0 {
		local = email[:i]
	} else {
		local = "Biblioteca"
	}

	palavras := strings.Split(strings.ReplaceAll(local, ".", " "), " ")
	for i, palavra := range palavras {
		if palavra == "" {
			continue
		}
		palavras[i] = strings.ToUpper(palavra[:1]) + palavra[1:]
	}

	return strings.Join(palavras, " ")
}
