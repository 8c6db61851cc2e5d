package usecase

import (
	"context"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos. A deleção roda em transação e recusa
// produtos ainda referenciados por vendas, kits ou conjuntos.
type ProdutoUseCase struct {
	produtoRepo    repository.ProdutoRepository
	fornecedorRepo repository.FornecedorRepository
	estoqueRepo    repository.AfiliadoEstoqueRepository
	txRunner       appvenda.TxRunner
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	produtoRepo repository.ProdutoRepository,
	fornecedorRepo repository.FornecedorRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	txRunner appvenda.TxRunner,
) *ProdutoUseCase {
	return &ProdutoUseCase{
		produtoRepo:    produtoRepo,
		fornecedorRepo: fornecedorRepo,
		estoqueRepo:    estoqueRepo,
		txRunner:       txRunner,
	}
}

// Criar valida id/nome e a existência do fornecedor antes de persistir.
func (uc *ProdutoUseCase) Criar(in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.ID == "" || in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	var fornecedorID *string
	if in.FornecedorID != "" {
		existe, err := uc.fornecedorRepo.Existe(in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, domain.ErrFornecedorInexistente
		}
		fornecedorID = &in.FornecedorID
	}
	p := &entity.Produto{
		ID:            in.ID,
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		EstoqueFisico: in.EstoqueFisico,
		EstoqueSite:   in.EstoqueSite,
		Preco:         in.Preco,
		PrecoCompra:   in.PrecoCompra,
		FornecedorID:  fornecedorID,
	}
	criado, err := uc.produtoRepo.Criar(p)
	if err != nil {
		return nil, err
	}
	return uc.paraResponse(criado, false)
}

// Listar devolve os produtos com fornecedor e alocações de afiliados.
// O termo de busca (opcional) filtra nome e descrição sem acentos e sem caixa.
func (uc *ProdutoUseCase) Listar(busca string) ([]*dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		if busca != "" && !contemBusca(p.Nome, busca) && !contemBusca(p.Descricao, busca) {
			continue
		}
		resp, err := uc.paraResponse(p, false)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// BuscarPorID devolve o produto completo (com fotos); nil quando não existe.
func (uc *ProdutoUseCase) BuscarPorID(id string) (*dto.ProdutoResponse, error) {
	p, err := uc.produtoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.paraResponse(p, true)
}

// Atualizar valida nome e fornecedor e grava; nil quando o produto não existe.
func (uc *ProdutoUseCase) Atualizar(id string, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	var fornecedorID *string
	if in.FornecedorID != "" {
		existe, err := uc.fornecedorRepo.Existe(in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, domain.ErrFornecedorInexistente
		}
		fornecedorID = &in.FornecedorID
	}
	p := &entity.Produto{
		ID:            id,
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		EstoqueFisico: in.EstoqueFisico,
		EstoqueSite:   in.EstoqueSite,
		Preco:         in.Preco,
		PrecoCompra:   in.PrecoCompra,
		FornecedorID:  fornecedorID,
	}
	atualizado, err := uc.produtoRepo.Atualizar(p)
	if err != nil {
		return nil, err
	}
	if atualizado == nil {
		return nil, nil
	}
	return uc.paraResponse(atualizado, false)
}

// Remover exclui o produto em transação: recusa quando há vendas, kits ou
// conjuntos vinculados; senão remove alocações de afiliados, fotos e a linha.
func (uc *ProdutoUseCase) Remover(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error {
		p, err := produtoRepo.BuscarPorID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNaoEncontrado
		}

		emVendas, err := vendaRepo.ContarPorProduto(id)
		if err != nil {
			return err
		}
		if emVendas > 0 {
			return domain.ErrProdutoComVendas
		}
		emKits, err := kitRepo.ContarPorProduto(id)
		if err != nil {
			return err
		}
		if emKits > 0 {
			return domain.ErrProdutoEmKits
		}
		emConjuntos, err := conjuntoRepo.ContarPorProduto(id)
		if err != nil {
			return err
		}
		if emConjuntos > 0 {
			return domain.ErrProdutoEmConjuntos
		}

		if err := estoqueRepo.RemoverPorProduto(id); err != nil {
			return err
		}
		if err := produtoRepo.RemoverFotos(id); err != nil {
			return err
		}
		return produtoRepo.Remover(id)
	})
}

// paraResponse monta o DTO com fornecedor, alocações e (opcionalmente) fotos.
func (uc *ProdutoUseCase) paraResponse(p *entity.Produto, comFotos bool) (*dto.ProdutoResponse, error) {
	resp := &dto.ProdutoResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		Descricao:       p.Descricao,
		EstoqueFisico:   p.EstoqueFisico,
		EstoqueSite:     p.EstoqueSite,
		Preco:           p.Preco,
		PrecoCompra:     p.PrecoCompra,
		AfiliadoEstoque: []dto.AfiliadoEstoqueResumo{},
		Fotos:           []string{},
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Fornecedor != nil {
		resp.Fornecedor = &dto.FornecedorResumo{
			ID:      p.Fornecedor.ID,
			Nome:    p.Fornecedor.Nome,
			Cidade:  p.Fornecedor.Cidade,
			Contato: p.Fornecedor.Contato,
		}
	}
	alocacoes, err := uc.estoqueRepo.ListarPorProduto(p.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range alocacoes {
		resp.AfiliadoEstoque = append(resp.AfiliadoEstoque, dto.AfiliadoEstoqueResumo{
			AfiliadoID:   a.AfiliadoID,
			AfiliadoNome: a.AfiliadoNome,
			Quantidade:   a.Quantidade,
		})
	}
	if comFotos {
		fotos, err := uc.produtoRepo.ListarFotos(p.ID)
		if err != nil {
			return nil, err
		}
		if fotos != nil {
			resp.Fotos = fotos
		}
	}
	return resp, nil
}
