package repository

import "github.com/estoquepro/backoffice-api/internal/domain/entity"

// KitRepository porta de persistência para kits e sua composição.
type KitRepository interface {
	Criar(k *entity.Kit) error
	BuscarPorID(id string) (*entity.Kit, error)
	Listar() ([]*entity.Kit, error)
	Atualizar(k *entity.Kit) (*entity.Kit, error)
	Remover(id string) (bool, error)
	// ListarProdutos devolve a composição; lista vazia quando o kit não existe.
	ListarProdutos(kitID string) ([]entity.KitProduto, error)
	// DefinirProdutos substitui a composição inteira (delete + insert).
	DefinirProdutos(kitID string, itens []entity.KitProduto) error
	ContarPorProduto(produtoID string) (int64, error)
}

// ConjuntoRepository porta de persistência para conjuntos e sua composição.
type ConjuntoRepository interface {
	Criar(c *entity.Conjunto) error
	BuscarPorID(id string) (*entity.Conjunto, error)
	Listar() ([]*entity.Conjunto, error)
	Atualizar(c *entity.Conjunto) (*entity.Conjunto, error)
	Remover(id string) (bool, error)
	ListarProdutos(conjuntoID string) ([]entity.ConjuntoProduto, error)
	DefinirProdutos(conjuntoID string, itens []entity.ConjuntoProduto) error
	ContarPorProduto(produtoID string) (int64, error)
}
