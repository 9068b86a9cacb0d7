// Package apiclient wraps the library-management REST API: a generic
// request layer with uniform failure classification, a bearer-token
// authentication state machine (login, automatic registration, refresh) and
// typed domain methods for clients, books, reservations and fines.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"biblioteca/pkg/logger"
	"biblioteca/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every request when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Options configure a Client. Email and Senha feed the authentication state
// machine only; they are never attached to regular requests.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:3000".
	BaseURL string
	// Timeout is the per-request deadline. Zero means DefaultTimeout.
	Timeout time.Duration
	// Email and Senha are the operator credentials used by ExecutarLogin.
	Email string
	Senha string
	// HTTPClient overrides the underlying transport; nil means a fresh
	// http.Client. Tests inject a fake RoundTripper through this.
	HTTPClient *http.Client
}

// Client issues requests against the library API. It owns the only mutable
// state in this layer — the auth session — and guards it with a mutex, so a
// single instance can be shared by callers as long as they tolerate
// serialized token refreshes.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client

	mu     sync.Mutex
	email  string
	senha  string
	sessao AuthSession
}

// New constructs a Client from the given options.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
		email:      opts.Email,
		senha:      opts.Senha,
	}
}

// Sessao returns a copy of the current auth session.
func (c *Client) Sessao() AuthSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sessao
}

// Get issues a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (map[string]any, error) {
	return c.executar(ctx, http.MethodGet, endpoint, query, nil, true)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, corpo any) (map[string]any, error) {
	return c.executar(ctx, http.MethodPost, endpoint, nil, corpo, true)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, corpo any) (map[string]any, error) {
	return c.executar(ctx, http.MethodPut, endpoint, nil, corpo, true)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, corpo any) (map[string]any, error) {
	return c.executar(ctx, http.MethodPatch, endpoint, nil, corpo, true)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (map[string]any, error) {
	return c.executar(ctx, http.MethodDelete, endpoint, nil, nil, true)
}

// executar performs one HTTP attempt and classifies the outcome. It never
// retries: on 401 the caller decides whether to run TentarReautenticacao and
// issue the request again. The auth session is read here but never written.
func (c *Client) executar(ctx context.Context,
	metodo, endpoint string,
	query url.Values,
	corpo any,
	comToken bool) (map[string]any, error) {
	destino := c.baseURL + endpoint
	if len(query) > 0 {
		destino += "?" + query.Encode()
	}

	var leitor io.Reader
	if corpo != nil {
		bruto, err := json.Marshal(corpo)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInternal, err, "não foi possível serializar o corpo da requisição")
		}
		leitor = bytes.NewReader(bruto)
	}

	ctx, cancelar := context.WithTimeout(ctx, c.timeout)
	defer cancelar()

	req, err := http.NewRequestWithContext(ctx, metodo, destino, leitor)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "não foi possível montar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if comToken {
		if token := c.Sessao().AccessToken; token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.Debug(ctx, "requisição à API",
		zap.String("metodo", metodo),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classificarFalhaTransporte(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bruto, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "não foi possível ler a resposta da API")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		mensagem := extrairMensagemErro(resp.StatusCode, bruto)

		return nil, serrors.With(serrors.ErrUnauthorized, "Não autorizado: %s", mensagem)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		mensagem := extrairMensagemErro(resp.StatusCode, bruto)
		logger.Warn(ctx, "falha na requisição",
			zap.String("metodo", metodo),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("mensagem", mensagem),
			zap.String("request_id", requestID))

		return nil, serrors.With(kindPorStatus(resp.StatusCode), "%s", mensagem)
	}

	// 2xx with a non-JSON (or empty) body is an empty success, not a failure.
	var payload map[string]any
	if err := json.Unmarshal(bruto, &payload); err != nil || payload == nil {
		return map[string]any{}, nil
	}

	return payload, nil
}

// classificarFalhaTransporte maps transport-level failures onto the three
// network error classes: timeout, connection refused and everything else.
func classificarFalhaTransporte(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "Timeout: a API levou muito tempo para responder")
	}

	var operr *net.OpError
	if errors.As(err, &operr) {
		return serrors.Wrap(serrors.ErrUnavailable, err, "Erro de conexão: não foi possível conectar à API")
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "Erro na requisição")
}

// kindPorStatus picks the semantic kind for a non-2xx, non-401 status.
func kindPorStatus(status int) serrors.Kind {
	switch {
	case status == http.StatusNotFound:
		return serrors.ErrNotFound
	case status == http.StatusConflict:
		return serrors.ErrConflict
	case status >= 500:
		return serrors.ErrInternal
	default:
		return serrors.ErrBadRequest
	}
}

// extrairMensagemErro digs a human-readable message out of an error response
// body. JSON bodies are probed key by key in priority order; the value may be
// a string, a mapping or a list (including a list of mappings). Non-JSON
// bodies fall back to their trimmed text, then to "HTTP {status}".
//
// Mappings are probed in sorted key order: Go maps have no iteration order
// and the extracted message must be deterministic.
func extrairMensagemErro(status int, corpo []byte) string {
	generica := fmt.Sprintf("HTTP %d", status)

	var payload map[string]any
	if err := json.Unmarshal(corpo, &payload); err != nil {
		if texto := strings.TrimSpace(string(corpo)); texto != "" {
			return texto
		}

		return generica
	}

	for _, chave := range []string{"message", "mensagem", "error", "detail", "errors"} {
		valor, ok := payload[chave]
		if !ok {
			continue
		}

		switch t := valor.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case map[string]any:
			if s := primeiroValorNaoVazio(t); s != "" {
				return s
			}

			return generica
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
				if m, ok := item.(map[string]any); ok {
					if s := primeiroValorNaoVazio(m); s != "" {
						return s
					}
				}
			}
		}
	}

	return generica
}

// primeiroValorNaoVazio returns the first non-empty value of the mapping,
// visiting keys in sorted order.
func primeiroValorNaoVazio(m map[string]any) string {
	chaves := make([]string, 0, len(m))
	for chave := range m {
		chaves = append(chaves, chave)
	}
	sort.Strings(chaves)

	for _, chave := range chaves {
		valor := m[chave]
		if valor == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(valor)); s != "" {
			return s
		}
	}

	return ""
}

// ExtrairLista decodes the list under the payload's "data" (or legacy
// "dados") key into a slice of T. A single object is treated as a
// one-element list; a missing or null key yields an empty slice.
func ExtrairLista[T any](payload map[string]any) ([]T, error) {
	bruto, ok := payload["data"]
	if !ok {
		bruto = payload["dados"]
	}
	if bruto == nil {
		return []T{}, nil
	}

	itens, ok := bruto.([]any)
	if !ok {
		itens = []any{bruto}
	}

	codificado, err := json.Marshal(itens)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "não foi possível recodificar a resposta")
	}
	var saida []T
	if err := json.Unmarshal(codificado, &saida); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "resposta da API em formato inesperado")
	}

	return saida, nil
}

// ExtrairObjeto decodes the object under the payload's "data" (or "dados")
// key into T. A missing key yields the zero value.
func ExtrairObjeto[T any](payload map[string]any) (T, error) {
	var saida T

	bruto, ok := payload["data"]
	if !ok {
		bruto = payload["dados"]
	}
	if bruto == nil {
		return saida, nil
	}

	codificado, err := json.Marshal(bruto)
	if err != nil {
		return saida, serrors.Wrap(serrors.ErrInternal, err, "não foi possível recodificar a resposta")
	}
	if err := json.Unmarshal(codificado, &saida); err != nil {
		return saida, serrors.Wrap(serrors.ErrInternal, err, "resposta da API em formato inesperado")
	}

	return saida, nil
}
