package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
	httpapi "github.com/estoquepro/backoffice-api/internal/interfaces/http"
)

// Fakes mínimos para montar o app Fiber sem banco. Embutem a interface para
// herdar os métodos que as rotas exercitadas não chamam.

type vendaRepoFake struct {
	repository.VendaRepository
	vendas map[string]*entity.Venda
	itens  map[string][]*entity.VendaItem

	erroCriar error
}

func novoVendaRepo() *vendaRepoFake {
	return &vendaRepoFake{
		vendas: map[string]*entity.Venda{},
		itens:  map[string][]*entity.VendaItem{},
	}
}

func (r *vendaRepoFake) Criar(v *entity.Venda) (*entity.Venda, error) {
	if r.erroCriar != nil {
		return nil, r.erroCriar
	}
	r.vendas[v.ID] = v
	return v, nil
}

func (r *vendaRepoFake) CriarItem(item *entity.VendaItem) error {
	r.itens[item.VendaID] = append(r.itens[item.VendaID], item)
	return nil
}

func (r *vendaRepoFake) BuscarPorID(id string) (*entity.Venda, error) {
	return r.vendas[id], nil
}

func (r *vendaRepoFake) ListarItens(vendaID string) ([]*entity.VendaItem, error) {
	return r.itens[vendaID], nil
}

func (r *vendaRepoFake) Listar() ([]*entity.Venda, error) {
	out := make([]*entity.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		out = append(out, v)
	}
	return out, nil
}

type produtoRepoFake struct {
	repository.ProdutoRepository
}

func (r *produtoRepoFake) DecrementarEstoqueSite(string, int) (bool, error)   { return true, nil }
func (r *produtoRepoFake) DecrementarEstoqueFisico(string, int) (bool, error) { return true, nil }

type txRunnerFake struct {
	vendaRepo *vendaRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	kitRepo repository.KitRepository,
	conjuntoRepo repository.ConjuntoRepository,
) error) error {
	return fn(t.vendaRepo, &produtoRepoFake{}, nil, nil, nil)
}

type geradorFixo struct{}

func (geradorFixo) NovoID() string { return "V0000000101" }

func novoApp(vendaRepo *vendaRepoFake) *fiber.App {
	tx := &txRunnerFake{vendaRepo: vendaRepo}
	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		RegistrarVenda: appvenda.NewRegistrarVendaUseCase(tx, geradorFixo{}),
		ConsultaVenda:  appvenda.NewConsultaVendaUseCase(vendaRepo, tx),
	})
	return app
}

func TestPostVendas_SemProdutosDevolve400ComMensagemDoPainel(t *testing.T) {
	app := novoApp(novoVendaRepo())

	req := httptest.NewRequest("POST", "/vendas", strings.NewReader(`{"produtos":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Produtos são obrigatórios"}`, string(body),
		"o corpo de erro deve ser exatamente o que o painel exibe")
}

func TestPostVendas_RegistroValidoDevolve201(t *testing.T) {
	repo := novoVendaRepo()
	app := novoApp(repo)

	payload := `{
		"tipo_venda": "online",
		"valor_total": "59.80",
		"produtos": [
			{"produto_id": "P1", "quantidade": 2, "preco_unitario": "29.90", "subtotal": "59.80"}
		]
	}`
	req := httptest.NewRequest("POST", "/vendas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.VendaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "V0000000101", out.ID)
	assert.Equal(t, "online", out.TipoVenda)
	assert.Contains(t, repo.vendas, "V0000000101")
}

func TestPostVendas_ReferenciaAmbiguaDevolve400(t *testing.T) {
	app := novoApp(novoVendaRepo())

	payload := `{"produtos":[{"produto_id":"P1","kit_id":"K1","quantidade":1}]}`
	req := httptest.NewRequest("POST", "/vendas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostVendas_IDDuplicadoDevolve400(t *testing.T) {
	repo := novoVendaRepo()
	repo.erroCriar = domain.ErrDuplicado
	app := novoApp(repo)

	payload := `{"produtos":[{"produto_id":"P1","quantidade":1,"preco_unitario":"10","subtotal":"10"}]}`
	req := httptest.NewRequest("POST", "/vendas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"recurso duplicado"}`, string(body))
	assert.Empty(t, repo.vendas, "nada pode ficar gravado quando o ID colide")
}

func TestGetVenda_InexistenteDevolve404(t *testing.T) {
	app := novoApp(novoVendaRepo())

	req := httptest.NewRequest("GET", "/vendas/V-nao-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.NotEmpty(t, e.Error)
}

func TestGetVenda_ExistenteDevolveComItens(t *testing.T) {
	repo := novoVendaRepo()
	app := novoApp(repo)

	// Registra via POST para que cabeçalho e item passem pelo fluxo real.
	payload := `{"produtos":[{"produto_id":"P1","quantidade":1,"preco_unitario":"10","subtotal":"10"}]}`
	req := httptest.NewRequest("POST", "/vendas", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("GET", "/vendas/V0000000101", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.VendaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "V0000000101", out.ID)
	require.Len(t, out.Produtos, 1)
	require.NotNil(t, out.Produtos[0].ProdutoID)
	assert.Equal(t, "P1", *out.Produtos[0].ProdutoID)
}
