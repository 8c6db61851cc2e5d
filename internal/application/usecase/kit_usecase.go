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

// KitUseCase CRUD de kits e sua composição. As escritas rodam em transação:
// substituir a composição é DELETE + INSERTs, e uma falha no meio não pode
// deixar o cabeçalho gravado com a composição apagada.
type KitUseCase struct {
	kitRepo     repository.KitRepository
	produtoRepo repository.ProdutoRepository
	txRunner    appvenda.TxRunner
}

// NewKitUseCase constrói o caso de uso.
func NewKitUseCase(
	kitRepo repository.KitRepository,
	produtoRepo repository.ProdutoRepository,
	txRunner appvenda.TxRunner,
) *KitUseCase {
	return &KitUseCase{kitRepo: kitRepo, produtoRepo: produtoRepo, txRunner: txRunner}
}

// Criar valida a composição (produtos existentes, quantidades > 0) e persiste
// cabeçalho e membros na mesma transação.
func (uc *KitUseCase) Criar(ctx context.Context, in dto.CriarKitRequest) (*dto.KitResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	itens, err := uc.validarComposicao(in.Produtos)
	if err != nil {
		return nil, err
	}
	k := &entity.Kit{ID: uuid.New().String(), Nome: in.Nome}
	for _, it := range itens {
		k.Produtos = append(k.Produtos, entity.KitProduto{
			KitID:      k.ID,
			ProdutoID:  it.ProdutoID,
			Quantidade: it.Quantidade,
		})
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		_ repository.ConjuntoRepository,
	) error {
		return kitRepo.Criar(k)
	})
	if err != nil {
		return nil, err
	}
	return kitParaResponse(k), nil
}

// BuscarPorID devolve o kit com composição; nil quando não existe.
func (uc *KitUseCase) BuscarPorID(id string) (*dto.KitResponse, error) {
	k, err := uc.kitRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, nil
	}
	return kitParaResponse(k), nil
}

// Listar devolve todos os kits.
func (uc *KitUseCase) Listar() ([]*dto.KitResponse, error) {
	kits, err := uc.kitRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.KitResponse, 0, len(kits))
	for _, k := range kits {
		out = append(out, kitParaResponse(k))
	}
	return out, nil
}

// Atualizar substitui nome e composição na mesma transação; nil quando o kit
// não existe.
func (uc *KitUseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarKitRequest) (*dto.KitResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	itens, err := uc.validarComposicao(in.Produtos)
	if err != nil {
		return nil, err
	}
	k := &entity.Kit{ID: id, Nome: in.Nome}
	for _, it := range itens {
		k.Produtos = append(k.Produtos, entity.KitProduto{
			KitID:      id,
			ProdutoID:  it.ProdutoID,
			Quantidade: it.Quantidade,
		})
	}
	var atualizado *entity.Kit
	err = uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		_ repository.ConjuntoRepository,
	) error {
		out, err := kitRepo.Atualizar(k)
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
	return kitParaResponse(atualizado), nil
}

// Remover exclui o kit e sua composição na mesma transação.
func (uc *KitUseCase) Remover(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		_ repository.ConjuntoRepository,
	) error {
		removido, err := kitRepo.Remover(id)
		if err != nil {
			return err
		}
		if !removido {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}

// validarComposicao normaliza quantidades e verifica que os produtos existem.
func (uc *KitUseCase) validarComposicao(itens []dto.ComposicaoItemRequest) ([]dto.ComposicaoItemRequest, error) {
	out := make([]dto.ComposicaoItemRequest, 0, len(itens))
	for _, it := range itens {
		if it.ProdutoID == "" || it.Quantidade <= 0 {
			return nil, domain.ErrEntradaInvalida
		}
		p, err := uc.produtoRepo.BuscarPorID(it.ProdutoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrEntradaInvalida
		}
		out = append(out, it)
	}
	return out, nil
}

func kitParaResponse(k *entity.Kit) *dto.KitResponse {
	resp := &dto.KitResponse{ID: k.ID, Nome: k.Nome, Produtos: []dto.ComposicaoItemResponse{}}
	for _, p := range k.Produtos {
		resp.Produtos = append(resp.Produtos, dto.ComposicaoItemResponse{
			ProdutoID:  p.ProdutoID,
			Quantidade: p.Quantidade,
		})
	}
	return resp
}
