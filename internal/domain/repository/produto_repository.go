package repository

import "github.com/estoquepro/backoffice-api/internal/domain/entity"

// ProdutoRepository porta de persistência para produtos.
// Os decrementos de estoque são limitados em zero no banco (GREATEST) e
// devolvem se alguma linha foi afetada, para distinguir produto inexistente.
type ProdutoRepository interface {
	Criar(p *entity.Produto) (*entity.Produto, error)
	BuscarPorID(id string) (*entity.Produto, error)
	Listar() ([]*entity.Produto, error)
	Atualizar(p *entity.Produto) (*entity.Produto, error)
	Remover(id string) error

	DecrementarEstoqueSite(produtoID string, quantidade int) (bool, error)
	DecrementarEstoqueFisico(produtoID string, quantidade int) (bool, error)

	ListarFotos(produtoID string) ([]string, error)
	RemoverFotos(produtoID string) error
}
