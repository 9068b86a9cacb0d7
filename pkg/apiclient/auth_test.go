package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// tokenComExp mints a signed JWT whose only relevant claim is exp. The
// client never verifies signatures, any key works.
func tokenComExp(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}
	assinado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("chave-de-teste"))
	require.NoError(t, err)

	return assinado
}

func corpoJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	bruto, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(bruto, &payload))

	return payload
}

func respostaTokens(access, refresh string) *http.Response {
	corpo := `{"tokens": {"accessToken": "` + access + `", "refreshToken": "` + refresh + `"}}`

	return resposta(http.StatusOK, corpo)
}

func TestExecutarLogin_sucesso(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		payload := corpoJSON(t, r)
		require.Equal(t, "operador@biblioteca.dev", payload["email"])
		require.Equal(t, "segredo", payload["senha"])

		return respostaTokens("acesso-1", "refresh-1"), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	sessao := c.Sessao()
	require.True(t, sessao.Autenticada())
	require.Equal(t, "acesso-1", sessao.AccessToken)
	require.Equal(t, "refresh-1", sessao.RefreshToken)
}

func TestExecutarLogin_registroAutomatico(t *testing.T) {
	var caminhos []string
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		caminhos = append(caminhos, r.URL.Path)
		switch r.URL.Path {
		case "/auth/login":
			if len(caminhos) == 1 {
				return resposta(http.StatusUnauthorized, `{"message": "credenciais inválidas"}`), nil
			}

			return respostaTokens("acesso-2", "refresh-2"), nil
		case "/auth/register":
			payload := corpoJSON(t, r)
			require.Equal(t, "Operador", payload["nome"])

			return resposta(http.StatusConflict, `{"message": "usuário já existe"}`), nil
		default:
			t.Fatalf("caminho inesperado: %s", r.URL.Path)

			return nil, nil
		}
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	require.Equal(t, []string{"/auth/login", "/auth/register", "/auth/login"}, caminhos)
	require.Equal(t, "acesso-2", c.Sessao().AccessToken)
}

func TestExecutarLogin_semCredenciais(t *testing.T) {
	c := apiclient.New(apiclient.Options{BaseURL: "http://localhost:3000"})

	err := c.ExecutarLogin(context.Background())
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestRenovarToken_semRefreshFalha(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("não deveria chamar a API sem refresh token")

		return nil, nil
	})

	err := c.RenovarToken(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestRenovarToken_mantemRefreshAnterior(t *testing.T) {
	primeira := true
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		if primeira {
			primeira = false

			return respostaTokens("acesso-1", "refresh-1"), nil
		}

		require.Equal(t, "/auth/refresh", r.URL.Path)
		payload := corpoJSON(t, r)
		require.Equal(t, "refresh-1", payload["refreshToken"])

		return resposta(http.StatusOK, `{"tokens": {"accessToken": "acesso-2"}}`), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	require.NoError(t, c.RenovarToken(context.Background()))

	sessao := c.Sessao()
	require.Equal(t, "acesso-2", sessao.AccessToken)
	require.Equal(t, "refresh-1", sessao.RefreshToken)
}

func TestTentarReautenticacao_caiParaLogin(t *testing.T) {
	var caminhos []string
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		caminhos = append(caminhos, r.URL.Path)
		if r.URL.Path == "/auth/refresh" {
			return resposta(http.StatusUnauthorized, `{"message": "refresh expirado"}`), nil
		}

		return respostaTokens("acesso-novo", "refresh-novo"), nil
	})

	require.NoError(t, c.Autenticar(context.Background(), "operador@biblioteca.dev", "segredo"))
	require.NoError(t, c.TentarReautenticacao(context.Background()))
	require.Contains(t, caminhos, "/auth/refresh")
	require.Equal(t, "acesso-novo", c.Sessao().AccessToken)
}

func TestExecutarLogin_registraExpiracaoDoJWT(t *testing.T) {
	expira := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respostaTokens(tokenComExp(t, expira), "refresh-1"), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	sessao := c.Sessao()
	require.True(t, sessao.ExpiraEm.Equal(expira))
	require.False(t, sessao.Expirada())
}

func TestExecutarLogin_tokenOpacoSemExpiracao(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respostaTokens("token-opaco", "refresh-1"), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	sessao := c.Sessao()
	require.True(t, sessao.ExpiraEm.IsZero())
	require.False(t, sessao.Expirada())
}

func TestTentarReautenticacao_refreshExpiradoVaiDiretoAoLogin(t *testing.T) {
	refreshVencido := ""
	var caminhos []string
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		caminhos = append(caminhos, r.URL.Path)
		require.NotEqual(t, "/auth/refresh", r.URL.Path)

		return respostaTokens("acesso-novo", refreshVencido), nil
	})

	refreshVencido = tokenComExp(t, time.Now().Add(-time.Hour))
	require.NoError(t, c.ExecutarLogin(context.Background()))
	caminhos = nil

	require.NoError(t, c.TentarReautenticacao(context.Background()))
	require.Equal(t, []string{"/auth/login"}, caminhos)
	require.Equal(t, "acesso-novo", c.Sessao().AccessToken)
}

func TestLimparSessao(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respostaTokens("acesso-1", "refresh-1"), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	require.True(t, c.Sessao().Autenticada())

	c.LimparSessao()
	require.False(t, c.Sessao().Autenticada())
}

func TestRequisicaoAutenticadaEnviaBearer(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/auth/login" {
			return respostaTokens("acesso-1", "refresh-1"), nil
		}

		require.Equal(t, "Bearer acesso-1", r.Header.Get("Authorization"))

		return resposta(http.StatusOK, `{"data": []}`), nil
	})

	require.NoError(t, c.ExecutarLogin(context.Background()))
	_, err := c.ListarReservas(context.Background(), "todas")
	require.NoError(t, err)
}
