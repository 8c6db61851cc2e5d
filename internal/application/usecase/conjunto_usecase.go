package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// ConjuntoUseCase CRUD de conjuntos e sua composição. Espelha KitUseCase,
// inclusive a transação nas escritas.
type ConjuntoUseCase struct {
	conjuntoRepo repository.ConjuntoRepository
	produtoRepo  repository.ProdutoRepository
	txRunner     appvenda.TxRunner
}

// NewConjuntoUseCase constrói o caso de uso.
func NewConjuntoUseCase(
	conjuntoRepo repository.ConjuntoRepository,
	produtoRepo repository.ProdutoRepository,
	txRunner appvenda.TxRunner,
) *ConjuntoUseCase {
	return &ConjuntoUseCase{conjuntoRepo: conjuntoRepo, produtoRepo: produtoRepo, txRunner: txRunner}
}

// Criar valida a composição e persiste cabeçalho e membros na mesma transação.
func (uc *ConjuntoUseCase) Criar(ctx context.Context, in dto.CriarConjuntoRequest) (*dto.ConjuntoResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.validarComposicao(in.Produtos); err != nil {
		return nil, err
	}
	c := &entity.Conjunto{ID: uuid.New().String(), Nome: in.Nome}
	for _, it := range in.Produtos {
		c.Produtos = append(c.Produtos, entity.ConjuntoProduto{
			ConjuntoID: c.ID,
			ProdutoID:  it.ProdutoID,
			Quantidade: it.Quantidade,
		})
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		_ repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error {
		return conjuntoRepo.Criar(c)
	})
	if err != nil {
		return nil, err
	}
	return conjuntoParaResponse(c), nil
}

// BuscarPorID devolve o conjunto com composição; nil quando não existe.
func (uc *ConjuntoUseCase) BuscarPorID(id string) (*dto.ConjuntoResponse, error) {
	c, err := uc.conjuntoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return conjuntoParaResponse(c), nil
}

// Listar devolve todos os conjuntos.
func (uc *ConjuntoUseCase) Listar() ([]*dto.ConjuntoResponse, error) {
	conjuntos, err := uc.conjuntoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConjuntoResponse, 0, len(conjuntos))
	for _, c := range conjuntos {
		out = append(out, conjuntoParaResponse(c))
	}
	return out, nil
}

// Atualizar substitui nome e composição na mesma transação; nil quando o
// conjunto não existe.
func (uc *ConjuntoUseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarConjuntoRequest) (*dto.ConjuntoResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.validarComposicao(in.Produtos); err != nil {
		return nil, err
	}
	c := &entity.Conjunto{ID: id, Nome: in.Nome}
	for _, it := range in.Produtos {
		c.Produtos = append(c.Produtos, entity.ConjuntoProduto{
			ConjuntoID: id,
			ProdutoID:  it.ProdutoID,
			Quantidade: it.Quantidade,
		})
	}
	var atualizado *entity.Conjunto
	err := uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		_ repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error {
		out, err := conjuntoRepo.Atualizar(c)
		if err != nil {
			return err
		}
		atualizado = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	if atualizado == nil {
		return nil, nil
	}
	return conjuntoParaResponse(atualizado), nil
}

// Remover exclui o conjunto e sua composição na mesma transação.
func (uc *ConjuntoUseCase) Remover(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		_ repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error {
		removido, err := conjuntoRepo.Remover(id)
		if err != nil {
			return err
		}
		if !removido {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}

func (uc *ConjuntoUseCase) validarComposicao(itens []dto.ComposicaoItemRequest) error {
	for _, it := range itens {
		if it.ProdutoID == "" || it.Quantidade <= 0 {
			return domain.ErrEntradaInvalida
		}
		p, err := uc.produtoRepo.BuscarPorID(it.ProdutoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrEntradaInvalida
		}
	}
	return nil
}

func conjuntoParaResponse(c *entity.Conjunto) *dto.ConjuntoResponse {
	resp := &dto.ConjuntoResponse{ID: c.ID, Nome: c.Nome, Produtos: []dto.ComposicaoItemResponse{}}
	for _, p := range c.Produtos {
		resp.Produtos = append(resp.Produtos, dto.ComposicaoItemResponse{
			ProdutoID:  p.ProdutoID,
			Quantidade: p.Quantidade,
		})
	}
	return resp
}
