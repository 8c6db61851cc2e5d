package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

var _ appvenda.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, com os
// repositórios amarrados à tx. Uma conexão do pool fica retida do Begin até
// o Commit/Rollback; o Rollback adiado cobre qualquer saída por erro.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia a transação, executa fn e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	kitRepo repository.KitRepository,
	conjuntoRepo repository.ConjuntoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	vendaRepo := NewVendaRepository(tx)
	produtoRepo := NewProdutoRepository(tx)
	estoqueRepo := NewAfiliadoEstoqueRepository(tx)
	kitRepo := NewKitRepository(tx)
	conjuntoRepo := NewConjuntoRepository(tx)

	if err := fn(vendaRepo, produtoRepo, estoqueRepo, kitRepo, conjuntoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
