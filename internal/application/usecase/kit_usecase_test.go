package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes de composição. Os repositórios imitam o adaptador pg: gravar um kit ou
// conjunto são vários comandos (cabeçalho, delete dos membros, inserts), e
// falharGravacao injeta uma falha depois do delete para simular a substituição
// interrompida no meio. O tx runner tira um snapshot antes de rodar e restaura
// quando fn devolve erro, como o rollback faria.
// ─────────────────────────────────────────────────────────────────────────────

var errGravacao = errors.New("falha simulada de gravação")

type composicaoLoja struct {
	produtos  map[string]*entity.Produto
	kits      map[string]*entity.Kit
	conjuntos map[string]*entity.Conjunto

	falharGravacao bool
}

func novaComposicaoLoja() *composicaoLoja {
	return &composicaoLoja{
		produtos:  map[string]*entity.Produto{},
		kits:      map[string]*entity.Kit{},
		conjuntos: map[string]*entity.Conjunto{},
	}
}

func copiarKit(k *entity.Kit) *entity.Kit {
	c := *k
	c.Produtos = append([]entity.KitProduto(nil), k.Produtos...)
	return &c
}

func copiarConjunto(c *entity.Conjunto) *entity.Conjunto {
	n := *c
	n.Produtos = append([]entity.ConjuntoProduto(nil), c.Produtos...)
	return &n
}

type kitGravacaoFake struct {
	repository.KitRepository
	loja *composicaoLoja
}

func (r *kitGravacaoFake) Criar(k *entity.Kit) error {
	r.loja.kits[k.ID] = &entity.Kit{ID: k.ID, Nome: k.Nome}
	if r.loja.falharGravacao {
		return errGravacao
	}
	r.loja.kits[k.ID].Produtos = append([]entity.KitProduto(nil), k.Produtos...)
	return nil
}

func (r *kitGravacaoFake) BuscarPorID(id string) (*entity.Kit, error) {
	k, ok := r.loja.kits[id]
	if !ok {
		return nil, nil
	}
	return copiarKit(k), nil
}

func (r *kitGravacaoFake) Atualizar(k *entity.Kit) (*entity.Kit, error) {
	atual, ok := r.loja.kits[k.ID]
	if !ok {
		return nil, nil
	}
	atual.Nome = k.Nome
	atual.Produtos = nil
	if r.loja.falharGravacao {
		return nil, errGravacao
	}
	atual.Produtos = append([]entity.KitProduto(nil), k.Produtos...)
	return copiarKit(atual), nil
}

func (r *kitGravacaoFake) Remover(id string) (bool, error) {
	if _, ok := r.loja.kits[id]; !ok {
		return false, nil
	}
	delete(r.loja.kits, id)
	return true, nil
}

type conjuntoGravacaoFake struct {
	repository.ConjuntoRepository
	loja *composicaoLoja
}

func (r *conjuntoGravacaoFake) Criar(c *entity.Conjunto) error {
	r.loja.conjuntos[c.ID] = &entity.Conjunto{ID: c.ID, Nome: c.Nome}
	if r.loja.falharGravacao {
		return errGravacao
	}
	r.loja.conjuntos[c.ID].Produtos = append([]entity.ConjuntoProduto(nil), c.Produtos...)
	return nil
}

func (r *conjuntoGravacaoFake) BuscarPorID(id string) (*entity.Conjunto, error) {
	c, ok := r.loja.conjuntos[id]
	if !ok {
		return nil, nil
	}
	return copiarConjunto(c), nil
}

func (r *conjuntoGravacaoFake) Atualizar(c *entity.Conjunto) (*entity.Conjunto, error) {
	atual, ok := r.loja.conjuntos[c.ID]
	if !ok {
		return nil, nil
	}
	atual.Nome = c.Nome
	atual.Produtos = nil
	if r.loja.falharGravacao {
		return nil, errGravacao
	}
	atual.Produtos = append([]entity.ConjuntoProduto(nil), c.Produtos...)
	return copiarConjunto(atual), nil
}

func (r *conjuntoGravacaoFake) Remover(id string) (bool, error) {
	if _, ok := r.loja.conjuntos[id]; !ok {
		return false, nil
	}
	delete(r.loja.conjuntos, id)
	return true, nil
}

type catalogoGravacaoFake struct {
	repository.ProdutoRepository
	loja *composicaoLoja
}

func (r *catalogoGravacaoFake) BuscarPorID(id string) (*entity.Produto, error) {
	return r.loja.produtos[id], nil
}

type composicaoTxRunner struct {
	loja *composicaoLoja
}

func (t *composicaoTxRunner) Run(_ context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	kitRepo repository.KitRepository,
	conjuntoRepo repository.ConjuntoRepository,
) error) error {
	kitsAntes := map[string]*entity.Kit{}
	for id, k := range t.loja.kits {
		kitsAntes[id] = copiarKit(k)
	}
	conjuntosAntes := map[string]*entity.Conjunto{}
	for id, c := range t.loja.conjuntos {
		conjuntosAntes[id] = copiarConjunto(c)
	}
	err := fn(
		nil,
		&catalogoGravacaoFake{loja: t.loja},
		nil,
		&kitGravacaoFake{loja: t.loja},
		&conjuntoGravacaoFake{loja: t.loja},
	)
	if err != nil {
		t.loja.kits = kitsAntes
		t.loja.conjuntos = conjuntosAntes
	}
	return err
}

func novoKitUC(loja *composicaoLoja) *usecase.KitUseCase {
	return usecase.NewKitUseCase(
		&kitGravacaoFake{loja: loja},
		&catalogoGravacaoFake{loja: loja},
		&composicaoTxRunner{loja: loja},
	)
}

func novoConjuntoUC(loja *composicaoLoja) *usecase.ConjuntoUseCase {
	return usecase.NewConjuntoUseCase(
		&conjuntoGravacaoFake{loja: loja},
		&catalogoGravacaoFake{loja: loja},
		&composicaoTxRunner{loja: loja},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validação de entrada
// ─────────────────────────────────────────────────────────────────────────────

func TestKitCriar_ComposicaoInvalida(t *testing.T) {
	loja := novaComposicaoLoja()
	loja.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	uc := novoKitUC(loja)

	_, err := uc.Criar(context.Background(), dto.CriarKitRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "nome é obrigatório")

	_, err = uc.Criar(context.Background(), dto.CriarKitRequest{
		Nome:     "Kit Verão",
		Produtos: []dto.ComposicaoItemRequest{{ProdutoID: "P1", Quantidade: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "quantidade deve ser positiva")

	_, err = uc.Criar(context.Background(), dto.CriarKitRequest{
		Nome:     "Kit Verão",
		Produtos: []dto.ComposicaoItemRequest{{ProdutoID: "P-fantasma", Quantidade: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "produto da composição deve existir")

	assert.Empty(t, loja.kits, "nada pode ter sido gravado")
}

func TestKitCriar_Persiste(t *testing.T) {
	loja := novaComposicaoLoja()
	loja.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	loja.produtos["P2"] = &entity.Produto{ID: "P2", Nome: "Blusa"}
	uc := novoKitUC(loja)

	out, err := uc.Criar(context.Background(), dto.CriarKitRequest{
		Nome: "Kit Verão",
		Produtos: []dto.ComposicaoItemRequest{
			{ProdutoID: "P1", Quantidade: 2},
			{ProdutoID: "P2", Quantidade: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	gravado := loja.kits[out.ID]
	require.NotNil(t, gravado)
	assert.Equal(t, "Kit Verão", gravado.Nome)
	assert.Len(t, gravado.Produtos, 2)
}

// ─────────────────────────────────────────────────────────────────────────────
// Atomicidade: substituir a composição é delete + inserts, e uma falha no meio
// não pode deixar o cabeçalho renomeado com os membros apagados.
// ─────────────────────────────────────────────────────────────────────────────

func TestKitAtualizar_FalhaNaGravacaoNaoDeixaEstadoParcial(t *testing.T) {
	loja := novaComposicaoLoja()
	loja.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	loja.produtos["P2"] = &entity.Produto{ID: "P2", Nome: "Blusa"}
	loja.kits["K1"] = &entity.Kit{
		ID:   "K1",
		Nome: "Kit Verão",
		Produtos: []entity.KitProduto{
			{KitID: "K1", ProdutoID: "P1", Quantidade: 2},
			{KitID: "K1", ProdutoID: "P2", Quantidade: 1},
		},
	}
	uc := novoKitUC(loja)

	loja.falharGravacao = true
	_, err := uc.Atualizar(context.Background(), "K1", dto.AtualizarKitRequest{
		Nome:     "Kit Inverno",
		Produtos: []dto.ComposicaoItemRequest{{ProdutoID: "P1", Quantidade: 5}},
	})
	require.ErrorIs(t, err, errGravacao)

	intacto := loja.kits["K1"]
	require.NotNil(t, intacto)
	assert.Equal(t, "Kit Verão", intacto.Nome, "nome não pode mudar quando a gravação falha")
	assert.Len(t, intacto.Produtos, 2, "composição original deve sobreviver à falha")
}

func TestKitCriar_FalhaNaGravacaoNaoDeixaCabecalhoOrfao(t *testing.T) {
	loja := novaComposicaoLoja()
	loja.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	uc := novoKitUC(loja)

	loja.falharGravacao = true
	_, err := uc.Criar(context.Background(), dto.CriarKitRequest{
		Nome:     "Kit Verão",
		Produtos: []dto.ComposicaoItemRequest{{ProdutoID: "P1", Quantidade: 1}},
	})
	require.ErrorIs(t, err, errGravacao)
	assert.Empty(t, loja.kits, "cabeçalho sem membros não pode ficar gravado")
}

func TestConjuntoAtualizar_FalhaNaGravacaoNaoDeixaEstadoParcial(t *testing.T) {
	loja := novaComposicaoLoja()
	loja.produtos["P1"] = &entity.Produto{ID: "P1", Nome: "Saia"}
	loja.conjuntos["C1"] = &entity.Conjunto{
		ID:   "C1",
		Nome: "Conjunto Praia",
		Produtos: []entity.ConjuntoProduto{
			{ConjuntoID: "C1", ProdutoID: "P1", Quantidade: 3},
		},
	}
	uc := novoConjuntoUC(loja)

	loja.falharGravacao = true
	_, err := uc.Atualizar(context.Background(), "C1", dto.AtualizarConjuntoRequest{
		Nome:     "Conjunto Campo",
		Produtos: []dto.ComposicaoItemRequest{{ProdutoID: "P1", Quantidade: 1}},
	})
	require.ErrorIs(t, err, errGravacao)

	intacto := loja.conjuntos["C1"]
	require.NotNil(t, intacto)
	assert.Equal(t, "Conjunto Praia", intacto.Nome)
	assert.Len(t, intacto.Produtos, 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Não encontrado
// ─────────────────────────────────────────────────────────────────────────────

func TestKitAtualizar_Inexistente(t *testing.T) {
	uc := novoKitUC(novaComposicaoLoja())
	out, err := uc.Atualizar(context.Background(), "K-fantasma", dto.AtualizarKitRequest{Nome: "Kit"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestKitRemover_NaoEncontrado(t *testing.T) {
	uc := novoKitUC(novaComposicaoLoja())
	err := uc.Remover(context.Background(), "K-fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestConjuntoRemover_NaoEncontrado(t *testing.T) {
	uc := novoConjuntoUC(novaComposicaoLoja())
	err := uc.Remover(context.Background(), "C-fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
