package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo com dois estoques independentes:
// EstoqueFisico (depósito) e EstoqueSite (canal online). Ambos nunca ficam
// negativos; o decremento é sempre limitado em zero.
type Produto struct {
	ID            string
	Nome          string
	Descricao     string
	EstoqueFisico int
	EstoqueSite   int
	Preco         decimal.Decimal // preço de venda
	PrecoCompra   decimal.Decimal
	FornecedorID  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Fornecedor preenchido via JOIN nas consultas de leitura (pode ser nil).
	Fornecedor *Fornecedor
}

// ProdutoFoto foto vinculada a um produto, ordenada para exibição no site.
type ProdutoFoto struct {
	ProdutoID string
	URL       string
	Ordem     int
}
