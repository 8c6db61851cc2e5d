// Package venda implementa os casos de uso de vendas: registro transacional
// com ajuste de estoque, consultas, manutenção do cabeçalho e recibo em PDF.
package venda

import (
	"context"

	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação, com os repositórios amarrados
// a ela. Commit quando fn devolve nil; Rollback em qualquer erro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error) error
}

// ReciboPDFGenerator porta para gerar o recibo de uma venda em PDF.
type ReciboPDFGenerator interface {
	GerarRecibo(ctx context.Context, venda *entity.Venda, itens []*entity.VendaItem) ([]byte, error)
}
