package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// Fakes em memória. Embutem a interface para herdar os métodos que o caso de
// uso não chama; chamar um deles causaria panic por receptor nil.

type catalogoFake struct {
	produtos map[string]*entity.Produto
	fotos    map[string][]string

	vendasPorProduto    map[string]int64
	kitsPorProduto      map[string]int64
	conjuntosPorProduto map[string]int64
}

func novoCatalogo() *catalogoFake {
	return &catalogoFake{
		produtos:            map[string]*entity.Produto{},
		fotos:               map[string][]string{},
		vendasPorProduto:    map[string]int64{},
		kitsPorProduto:      map[string]int64{},
		conjuntosPorProduto: map[string]int64{},
	}
}

type produtoRepoFake struct {
	repository.ProdutoRepository
	cat *catalogoFake
}

func (r *produtoRepoFake) Criar(p *entity.Produto) (*entity.Produto, error) {
	r.cat.produtos[p.ID] = p
	return p, nil
}

func (r *produtoRepoFake) BuscarPorID(id string) (*entity.Produto, error) {
	return r.cat.produtos[id], nil
}

func (r *produtoRepoFake) Listar() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.cat.produtos))
	for _, p := range r.cat.produtos {
		out = append(out, p)
	}
	return out, nil
}

func (r *produtoRepoFake) Remover(id string) error {
	delete(r.cat.produtos, id)
	return nil
}

func (r *produtoRepoFake) ListarFotos(produtoID string) ([]string, error) {
	return r.cat.fotos[produtoID], nil
}

func (r *produtoRepoFake) RemoverFotos(produtoID string) error {
	delete(r.cat.fotos, produtoID)
	return nil
}

type fornecedorRepoFake struct {
	repository.FornecedorRepository
	existentes map[string]bool
}

func (r *fornecedorRepoFake) Existe(id string) (bool, error) {
	return r.existentes[id], nil
}

type estoqueRepoFake struct {
	repository.AfiliadoEstoqueRepository
	alocacoes map[string][]*entity.AfiliadoEstoque
}

func (r *estoqueRepoFake) ListarPorProduto(produtoID string) ([]*entity.AfiliadoEstoque, error) {
	return r.alocacoes[produtoID], nil
}

func (r *estoqueRepoFake) RemoverPorProduto(produtoID string) error {
	delete(r.alocacoes, produtoID)
	return nil
}

type vendaRepoFake struct {
	repository.VendaRepository
	cat *catalogoFake
}

func (r *vendaRepoFake) ContarPorProduto(produtoID string) (int64, error) {
	return r.cat.vendasPorProduto[produtoID], nil
}

type kitRepoFake struct {
	repository.KitRepository
	cat *catalogoFake
}

func (r *kitRepoFake) ContarPorProduto(produtoID string) (int64, error) {
	return r.cat.kitsPorProduto[produtoID], nil
}

type conjuntoRepoFake struct {
	repository.ConjuntoRepository
	cat *catalogoFake
}

func (r *conjuntoRepoFake) ContarPorProduto(produtoID string) (int64, error) {
	return r.cat.conjuntosPorProduto[produtoID], nil
}

// txRunnerFake executa fn direto, sem transação real; os testes de deleção só
// verificam as regras de bloqueio, não atomicidade.
type txRunnerFake struct {
	cat     *catalogoFake
	estoque *estoqueRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	kitRepo repository.KitRepository,
	conjuntoRepo repository.ConjuntoRepository,
) error) error {
	return fn(
		&vendaRepoFake{cat: t.cat},
		&produtoRepoFake{cat: t.cat},
		t.estoque,
		&kitRepoFake{cat: t.cat},
		&conjuntoRepoFake{cat: t.cat},
	)
}

func novoProdutoUC(cat *catalogoFake, fornecedores map[string]bool) *usecase.ProdutoUseCase {
	estoque := &estoqueRepoFake{alocacoes: map[string][]*entity.AfiliadoEstoque{}}
	return usecase.NewProdutoUseCase(
		&produtoRepoFake{cat: cat},
		&fornecedorRepoFake{existentes: fornecedores},
		estoque,
		&txRunnerFake{cat: cat, estoque: estoque},
	)
}

func TestProdutoCriar_IDENomeObrigatorios(t *testing.T) {
	uc := novoProdutoUC(novoCatalogo(), nil)

	_, err := uc.Criar(dto.CriarProdutoRequest{Nome: "Saia"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Criar(dto.CriarProdutoRequest{ID: "P1"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProdutoCriar_FornecedorInexistente(t *testing.T) {
	uc := novoProdutoUC(novoCatalogo(), map[string]bool{"F1": true})

	_, err := uc.Criar(dto.CriarProdutoRequest{ID: "P1", Nome: "Saia", FornecedorID: "F-nao-existe"})
	assert.ErrorIs(t, err, domain.ErrFornecedorInexistente)

	out, err := uc.Criar(dto.CriarProdutoRequest{ID: "P1", Nome: "Saia", FornecedorID: "F1"})
	require.NoError(t, err)
	assert.Equal(t, "P1", out.ID)
}

func TestProdutoListar_BuscaIgnoraAcentosECaixa(t *testing.T) {
	cat := novoCatalogo()
	cat.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia Lápis Midi"}
	cat.produtos["P2"] = &entity.Produto{ID: "P2", Nome: "Vestido Longo", Descricao: "tecido de algodão"}
	cat.produtos["P3"] = &entity.Produto{ID: "P3", Nome: "Blusa"}
	uc := novoProdutoUC(cat, nil)

	out, err := uc.Listar("lapis")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "P1", out[0].ID)

	// O termo também casa com a descrição.
	out, err = uc.Listar("ALGODÃO")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "P2", out[0].ID)

	// Sem termo, devolve tudo.
	out, err = uc.Listar("")
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestProdutoRemover_BloqueadoPorVinculos(t *testing.T) {
	cat := novoCatalogo()
	cat.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	cat.vendasPorProduto["P1"] = 2
	uc := novoProdutoUC(cat, nil)

	err := uc.Remover(context.Background(), "P1")
	assert.ErrorIs(t, err, domain.ErrProdutoComVendas)

	cat.vendasPorProduto["P1"] = 0
	cat.kitsPorProduto["P1"] = 1
	err = uc.Remover(context.Background(), "P1")
	assert.ErrorIs(t, err, domain.ErrProdutoEmKits)

	cat.kitsPorProduto["P1"] = 0
	cat.conjuntosPorProduto["P1"] = 1
	err = uc.Remover(context.Background(), "P1")
	assert.ErrorIs(t, err, domain.ErrProdutoEmConjuntos)

	_, existe := cat.produtos["P1"]
	assert.True(t, existe, "produto bloqueado não pode ter sido removido")
}

func TestProdutoRemover_SemVinculosRemove(t *testing.T) {
	cat := novoCatalogo()
	cat.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	cat.fotos["P1"] = []string{"https://cdn/p1.jpg"}
	uc := novoProdutoUC(cat, nil)

	err := uc.Remover(context.Background(), "P1")
	require.NoError(t, err)
	_, existe := cat.produtos["P1"]
	assert.False(t, existe)
	_, temFotos := cat.fotos["P1"]
	assert.False(t, temFotos, "fotos saem junto com o produto")
}

func TestProdutoRemover_NaoEncontrado(t *testing.T) {
	uc := novoProdutoUC(novoCatalogo(), nil)
	err := uc.Remover(context.Background(), "P-fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
