// Package venda contém as regras de negócio puras do registro de vendas:
// tipos de canal, referência de item (produto, conjunto ou kit), resultado
// do ajuste de estoque e geração do identificador curto da venda.
package venda

import "github.com/estoquepro/backoffice-api/internal/domain"

// Canais de venda. Online baixa do estoque do site; física baixa da alocação
// do afiliado (quando houver) ou do estoque físico.
const (
	TipoOnline = "online"
	TipoFisica = "fisica"
)

// NormalizarTipo aplica o default "online" para canal ausente ou desconhecido.
func NormalizarTipo(tipo string) string {
	if tipo == TipoFisica {
		return TipoFisica
	}
	return TipoOnline
}

// RefTipo discrimina a referência de um item de venda.
type RefTipo int

const (
	RefProduto RefTipo = iota + 1
	RefConjunto
	RefKit
)

// ItemRef referência de um item de venda com exatamente um caso ativo.
// No banco e na API são três colunas/campos anuláveis; aqui é uma variante
// para que o restante do código não precise re-checar exclusividade.
type ItemRef struct {
	Tipo RefTipo
	ID   string
}

// NovaItemRef converte os três campos anuláveis do request em uma variante.
// Zero ou mais de uma referência preenchida é entrada inválida.
func NovaItemRef(produtoID, conjuntoID, kitID string) (ItemRef, error) {
	var ref ItemRef
	n := 0
	if produtoID != "" {
		ref = ItemRef{Tipo: RefProduto, ID: produtoID}
		n++
	}
	if conjuntoID != "" {
		ref = ItemRef{Tipo: RefConjunto, ID: conjuntoID}
		n++
	}
	if kitID != "" {
		ref = ItemRef{Tipo: RefKit, ID: kitID}
		n++
	}
	if n != 1 {
		return ItemRef{}, domain.ErrEntradaInvalida
	}
	return ref, nil
}

// NormalizarQuantidade aplica o default 1 para quantidade ausente ou não positiva.
func NormalizarQuantidade(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}
