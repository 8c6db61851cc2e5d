package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda cabeçalho de uma venda. Itens em VendaItem (1:N, criados na mesma
// transação do cabeçalho). A exclusão da venda remove os itens mas não
// reverte os decrementos de estoque aplicados na criação.
type Venda struct {
	ID          string // gerado (curto, cabe em varchar(20))
	AfiliadoID  *string
	Tipo        string // "online" | "fisica"
	Total       decimal.Decimal
	DataVenda   time.Time
	Observacoes string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	AfiliadoNome string // via JOIN, somente leitura
}

// VendaItem linha de venda. Exatamente uma das referências ProdutoID,
// ConjuntoID ou KitID é não nula (três colunas no banco, variante no domínio).
type VendaItem struct {
	ID            int64
	VendaID       string
	ProdutoID     *string
	ConjuntoID    *string
	KitID         *string
	Quantidade    int
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal

	// Nomes resolvidos via JOIN nas consultas de leitura.
	ProdutoNome  string
	ConjuntoNome string
	KitNome      string
}
