package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest entrada para criar um produto. O ID é o código definido
// no painel (não gerado pelo servidor).
type CriarProdutoRequest struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	EstoqueFisico int             `json:"estoque_fisico"`
	EstoqueSite   int             `json:"estoque_site"`
	Preco         decimal.Decimal `json:"preco"`
	PrecoCompra   decimal.Decimal `json:"preco_compra"`
	FornecedorID  string          `json:"fornecedor_id"`
}

// AtualizarProdutoRequest entrada para atualizar um produto.
type AtualizarProdutoRequest struct {
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	EstoqueFisico int             `json:"estoque_fisico"`
	EstoqueSite   int             `json:"estoque_site"`
	Preco         decimal.Decimal `json:"preco"`
	PrecoCompra   decimal.Decimal `json:"preco_compra"`
	FornecedorID  string          `json:"fornecedor_id"`
}

// FornecedorResumo fornecedor embutido na resposta de produto.
type FornecedorResumo struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Cidade  string `json:"cidade"`
	Contato string `json:"contato"`
}

// AfiliadoEstoqueResumo alocação de afiliado embutida na resposta de produto.
type AfiliadoEstoqueResumo struct {
	AfiliadoID   string `json:"afiliado_id"`
	AfiliadoNome string `json:"afiliado_nome"`
	Quantidade   int    `json:"quantidade"`
}

// ProdutoResponse saída de um produto com fornecedor, alocações e fotos.
type ProdutoResponse struct {
	ID              string                  `json:"id"`
	Nome            string                  `json:"nome"`
	Descricao       string                  `json:"descricao"`
	EstoqueFisico   int                     `json:"estoque_fisico"`
	EstoqueSite     int                     `json:"estoque_site"`
	Preco           decimal.Decimal         `json:"preco"`
	PrecoCompra     decimal.Decimal         `json:"preco_compra"`
	Fornecedor      *FornecedorResumo       `json:"fornecedor"`
	AfiliadoEstoque []AfiliadoEstoqueResumo `json:"afiliado_estoque"`
	Fotos           []string                `json:"fotos"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}
