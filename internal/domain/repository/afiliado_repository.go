package repository

import "github.com/estoquepro/backoffice-api/internal/domain/entity"

// AfiliadoRepository porta de persistência para afiliados.
type AfiliadoRepository interface {
	Criar(a *entity.Afiliado) error
	BuscarPorID(id string) (*entity.Afiliado, error)
	Listar() ([]*entity.Afiliado, error)
	Atualizar(a *entity.Afiliado) (*entity.Afiliado, error)
	Remover(id string) (bool, error)
}

// AfiliadoEstoqueRepository porta para a alocação de estoque por afiliado.
// Buscar devolve nil (sem erro) quando o par (produto, afiliado) não existe;
// esse nil é o gatilho do no-op deliberado do ajuste de estoque em vendas
// físicas. Upsert com quantidade <= 0 remove a linha em vez de gravá-la.
type AfiliadoEstoqueRepository interface {
	Buscar(produtoID, afiliadoID string) (*entity.AfiliadoEstoque, error)
	Atualizar(produtoID, afiliadoID string, quantidade int) error
	Remover(produtoID, afiliadoID string) error
	Upsert(produtoID, afiliadoID string, quantidade int) error
	ListarPorProduto(produtoID string) ([]*entity.AfiliadoEstoque, error)
	ListarPorAfiliado(afiliadoID string) ([]*entity.AfiliadoEstoque, error)
	RemoverPorProduto(produtoID string) error
}
