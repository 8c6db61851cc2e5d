package usecase

import (
	"github.com/google/uuid"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar gera o ID no servidor e persiste.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	f := &entity.Fornecedor{
		ID:      uuid.New().String(),
		Nome:    in.Nome,
		Cidade:  in.Cidade,
		Contato: in.Contato,
	}
	if err := uc.repo.Criar(f); err != nil {
		return nil, err
	}
	return fornecedorParaResponse(f), nil
}

// BuscarPorID devolve o fornecedor; nil quando não existe.
func (uc *FornecedorUseCase) BuscarPorID(id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return fornecedorParaResponse(f), nil
}

// Listar devolve todos os fornecedores.
func (uc *FornecedorUseCase) Listar() ([]*dto.FornecedorResponse, error) {
	fornecedores, err := uc.repo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, fornecedorParaResponse(f))
	}
	return out, nil
}

// Atualizar grava os campos; nil quando o fornecedor não existe.
func (uc *FornecedorUseCase) Atualizar(id string, in dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	f, err := uc.repo.Atualizar(&entity.Fornecedor{
		ID:      id,
		Nome:    in.Nome,
		Cidade:  in.Cidade,
		Contato: in.Contato,
	})
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return fornecedorParaResponse(f), nil
}

// Remover exclui o fornecedor.
func (uc *FornecedorUseCase) Remover(id string) error {
	removido, err := uc.repo.Remover(id)
	if err != nil {
		return err
	}
	if !removido {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func fornecedorParaResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:      f.ID,
		Nome:    f.Nome,
		Cidade:  f.Cidade,
		Contato: f.Contato,
	}
}
