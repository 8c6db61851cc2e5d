package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendaItemRequest item de venda como chega do painel: três referências
// anuláveis, das quais exatamente uma deve vir preenchida.
type VendaItemRequest struct {
	ProdutoID     string          `json:"produto_id"`
	ConjuntoID    string          `json:"conjunto_id"`
	KitID         string          `json:"kit_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// CriarVendaRequest entrada do registro de venda.
// TipoVenda default "online"; DataVenda em "2006-01-02", default hoje.
type CriarVendaRequest struct {
	AfiliadoID  string             `json:"afiliado_id"`
	TipoVenda   string             `json:"tipo_venda"`
	ValorTotal  decimal.Decimal    `json:"valor_total"`
	Observacoes string             `json:"observacoes"`
	DataVenda   string             `json:"data_venda"`
	Produtos    []VendaItemRequest `json:"produtos"`
}

// AtualizarVendaRequest atualização do cabeçalho; não reexecuta ajuste de estoque.
type AtualizarVendaRequest struct {
	AfiliadoID  string          `json:"afiliado_id"`
	TipoVenda   string          `json:"tipo_venda"`
	ValorTotal  decimal.Decimal `json:"valor_total"`
	Observacoes string          `json:"observacoes"`
	DataVenda   string          `json:"data_venda"`
}

// VendaItemResponse item de venda com nomes resolvidos.
type VendaItemResponse struct {
	ID            int64           `json:"id"`
	ProdutoID     *string         `json:"produto_id"`
	ConjuntoID    *string         `json:"conjunto_id"`
	KitID         *string         `json:"kit_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ProdutoNome   string          `json:"produto_nome,omitempty"`
	ConjuntoNome  string          `json:"conjunto_nome,omitempty"`
	KitNome       string          `json:"kit_nome,omitempty"`
}

// VendaResponse cabeçalho de venda; Produtos preenchido nas rotas de detalhe.
type VendaResponse struct {
	ID           string              `json:"id"`
	DataVenda    time.Time           `json:"data_venda"`
	AfiliadoID   *string             `json:"afiliado_id"`
	AfiliadoNome string              `json:"afiliado_nome,omitempty"`
	ValorTotal   decimal.Decimal     `json:"valor_total"`
	TipoVenda    string              `json:"tipo_venda"`
	Observacoes  string              `json:"observacoes"`
	Produtos     []VendaItemResponse `json:"produtos,omitempty"`
}
