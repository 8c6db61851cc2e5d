package repository

import "github.com/estoquepro/backoffice-api/internal/domain/entity"

// FornecedorRepository porta de persistência para fornecedores.
type FornecedorRepository interface {
	Criar(f *entity.Fornecedor) error
	BuscarPorID(id string) (*entity.Fornecedor, error)
	Listar() ([]*entity.Fornecedor, error)
	Atualizar(f *entity.Fornecedor) (*entity.Fornecedor, error)
	Remover(id string) (bool, error)
	Existe(id string) (bool, error)
}
