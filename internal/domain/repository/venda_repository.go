package repository

import (
	"time"

	"github.com/estoquepro/backoffice-api/internal/domain/entity"
)

// VendaRepository porta de persistência para vendas e seus itens.
// Criar e CriarItem são usados dentro da transação do registro de venda;
// as leituras resolvem afiliado_nome e os nomes de produto/conjunto/kit via JOIN.
type VendaRepository interface {
	Criar(v *entity.Venda) (*entity.Venda, error)
	CriarItem(item *entity.VendaItem) error
	BuscarPorID(id string) (*entity.Venda, error)
	Listar() ([]*entity.Venda, error)
	ListarPorPeriodo(inicio, fim *time.Time) ([]*entity.Venda, error)
	ListarItens(vendaID string) ([]*entity.VendaItem, error)
	Atualizar(v *entity.Venda) (*entity.Venda, error)
	RemoverItens(vendaID string) error
	Remover(id string) (bool, error)
	ContarPorProduto(produtoID string) (int64, error)
}
