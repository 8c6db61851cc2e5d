package usecase

import (
	"github.com/google/uuid"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// AfiliadoUseCase CRUD de afiliados e manutenção da alocação de estoque.
type AfiliadoUseCase struct {
	afiliadoRepo repository.AfiliadoRepository
	estoqueRepo  repository.AfiliadoEstoqueRepository
	produtoRepo  repository.ProdutoRepository
}

// NewAfiliadoUseCase constrói o caso de uso.
func NewAfiliadoUseCase(
	afiliadoRepo repository.AfiliadoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) *AfiliadoUseCase {
	return &AfiliadoUseCase{
		afiliadoRepo: afiliadoRepo,
		estoqueRepo:  estoqueRepo,
		produtoRepo:  produtoRepo,
	}
}

// Criar gera o ID no servidor e persiste.
func (uc *AfiliadoUseCase) Criar(in dto.CriarAfiliadoRequest) (*dto.AfiliadoResponse, error) {
	if in.NomeCompleto == "" {
		return nil, domain.ErrEntradaInvalida
	}
	a := &entity.Afiliado{ID: uuid.New().String(), NomeCompleto: in.NomeCompleto}
	if err := uc.afiliadoRepo.Criar(a); err != nil {
		return nil, err
	}
	return &dto.AfiliadoResponse{ID: a.ID, NomeCompleto: a.NomeCompleto}, nil
}

// BuscarPorID devolve o afiliado; nil quando não existe.
func (uc *AfiliadoUseCase) BuscarPorID(id string) (*dto.AfiliadoResponse, error) {
	a, err := uc.afiliadoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return &dto.AfiliadoResponse{ID: a.ID, NomeCompleto: a.NomeCompleto}, nil
}

// Listar devolve todos os afiliados.
func (uc *AfiliadoUseCase) Listar() ([]*dto.AfiliadoResponse, error) {
	afiliados, err := uc.afiliadoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AfiliadoResponse, 0, len(afiliados))
	for _, a := range afiliados {
		out = append(out, &dto.AfiliadoResponse{ID: a.ID, NomeCompleto: a.NomeCompleto})
	}
	return out, nil
}

// Atualizar grava o nome; nil quando o afiliado não existe.
func (uc *AfiliadoUseCase) Atualizar(id string, in dto.AtualizarAfiliadoRequest) (*dto.AfiliadoResponse, error) {
	if in.NomeCompleto == "" {
		return nil, domain.ErrEntradaInvalida
	}
	a, err := uc.afiliadoRepo.Atualizar(&entity.Afiliado{ID: id, NomeCompleto: in.NomeCompleto})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return &dto.AfiliadoResponse{ID: a.ID, NomeCompleto: a.NomeCompleto}, nil
}

// Remover exclui o afiliado.
func (uc *AfiliadoUseCase) Remover(id string) error {
	removido, err := uc.afiliadoRepo.Remover(id)
	if err != nil {
		return err
	}
	if !removido {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListarEstoque devolve as alocações do afiliado com nome do produto.
func (uc *AfiliadoUseCase) ListarEstoque(afiliadoID string) ([]*dto.AfiliadoEstoqueResponse, error) {
	a, err := uc.afiliadoRepo.BuscarPorID(afiliadoID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNaoEncontrado
	}
	alocacoes, err := uc.estoqueRepo.ListarPorAfiliado(afiliadoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AfiliadoEstoqueResponse, 0, len(alocacoes))
	for _, e := range alocacoes {
		out = append(out, &dto.AfiliadoEstoqueResponse{
			ProdutoID:   e.ProdutoID,
			ProdutoNome: e.ProdutoNome,
			Quantidade:  e.Quantidade,
		})
	}
	return out, nil
}

// DefinirEstoque grava a alocação (produto, afiliado); quantidade <= 0 remove.
func (uc *AfiliadoUseCase) DefinirEstoque(afiliadoID, produtoID string, in dto.DefinirEstoqueAfiliadoRequest) error {
	a, err := uc.afiliadoRepo.BuscarPorID(afiliadoID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNaoEncontrado
	}
	p, err := uc.produtoRepo.BuscarPorID(produtoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.estoqueRepo.Upsert(produtoID, afiliadoID, in.Quantidade)
}
