// Package pdf gera o recibo em PDF de uma venda usando Maroto v2.
//
// Layout da página A4:
//
//	┌───────────────────────────────────────────────────────────┐
//	│  HEADER: Recibo de Venda  │  ID da venda + Data           │
//	│  ───────────────────────────────────────────────────────  │
//	│  CANAL + AFILIADO (quando venda física)                   │
//	│  ───────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Item | Preço Unit. | Subtotal              │
//	│  ───────────────────────────────────────────────────────  │
//	│  TOTAL                                                    │
//	└───────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	domvenda "github.com/estoquepro/backoffice-api/internal/domain/venda"
)

var (
	corPrimaria = &props.Color{Red: 33, Green: 78, Blue: 52}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appvenda.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa venda.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GerarRecibo gera o PDF e devolve seus bytes.
func (g *MarotoReciboGenerator) GerarRecibo(_ context.Context, venda *entity.Venda, itens []*entity.VendaItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venda "+venda.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(venda))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(canalRow(venda))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaItemRows(itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(venda))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabecalhoRow: título à esquerda, ID e data à direita.
func cabecalhoRow(venda *entity.Venda) core.Row {
	data := venda.DataVenda.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("RECIBO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(venda.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: corCinza,
			}),
		),
	)
}

// canalRow: canal da venda e afiliado (quando houver).
func canalRow(venda *entity.Venda) core.Row {
	canal := "Venda online"
	if venda.Tipo == domvenda.TipoFisica {
		canal = "Venda física"
	}
	detalhe := canal
	if venda.AfiliadoNome != "" {
		detalhe += "   |   Afiliado: " + venda.AfiliadoNome
	}
	if venda.Observacoes != "" {
		detalhe += "   |   Obs: " + venda.Observacoes
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(detalhe, props.Text{Size: 8, Top: 3, Color: corCinza}),
		),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela de itens.
func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Item", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tabelaItemRows: uma linha por item, com o nome resolvido da referência.
func tabelaItemRows(itens []*entity.VendaItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nomeItem(it),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.PrecoUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total da venda alinhado à direita.
func totalRow(venda *entity.Venda) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: corPrimaria,
			}),
		),
		col.New(3).Add(
			text.New("R$ "+venda.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}

// nomeItem resolve o nome exibido: produto, conjunto ou kit.
func nomeItem(it *entity.VendaItem) string {
	switch {
	case it.ProdutoNome != "":
		return it.ProdutoNome
	case it.ConjuntoNome != "":
		return "Conjunto: " + it.ConjuntoNome
	case it.KitNome != "":
		return "Kit: " + it.KitNome
	}
	return "(item removido)"
}
