package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

var _ repository.AfiliadoEstoqueRepository = (*AfiliadoEstoqueRepo)(nil)

// AfiliadoEstoqueRepo implementação de AfiliadoEstoqueRepository sobre PostgreSQL.
// Usado dentro da transação de venda (política de ajuste) e pelas rotas de
// consulta/manutenção da alocação de afiliados.
type AfiliadoEstoqueRepo struct {
	q Querier
}

// NewAfiliadoEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAfiliadoEstoqueRepository(q Querier) *AfiliadoEstoqueRepo {
	return &AfiliadoEstoqueRepo{q: q}
}

// Buscar obtém a alocação (produto, afiliado); nil quando o par não existe.
func (r *AfiliadoEstoqueRepo) Buscar(produtoID, afiliadoID string) (*entity.AfiliadoEstoque, error) {
	var e entity.AfiliadoEstoque
	err := r.q.QueryRow(context.Background(),
		`SELECT produto_id, afiliado_id, quantidade FROM afiliado_estoque WHERE produto_id = $1 AND afiliado_id = $2`,
		produtoID, afiliadoID,
	).Scan(&e.ProdutoID, &e.AfiliadoID, &e.Quantidade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get afiliado estoque: %w", err)
	}
	return &e, nil
}

// Atualizar grava a nova quantidade da alocação existente.
func (r *AfiliadoEstoqueRepo) Atualizar(produtoID, afiliadoID string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE afiliado_estoque SET quantidade = $1 WHERE produto_id = $2 AND afiliado_id = $3`,
		quantidade, produtoID, afiliadoID,
	)
	if err != nil {
		return fmt.Errorf("update afiliado estoque: %w", err)
	}
	return nil
}

// Remover exclui a alocação (esgotada ou zerada pelo painel).
func (r *AfiliadoEstoqueRepo) Remover(produtoID, afiliadoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM afiliado_estoque WHERE produto_id = $1 AND afiliado_id = $2`,
		produtoID, afiliadoID,
	)
	if err != nil {
		return fmt.Errorf("delete afiliado estoque: %w", err)
	}
	return nil
}

// Upsert grava a alocação; quantidade <= 0 remove a linha em vez de persistir
// saldo não positivo.
func (r *AfiliadoEstoqueRepo) Upsert(produtoID, afiliadoID string, quantidade int) error {
	if quantidade <= 0 {
		return r.Remover(produtoID, afiliadoID)
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO afiliado_estoque (produto_id, afiliado_id, quantidade)
		VALUES ($1, $2, $3)
		ON CONFLICT (produto_id, afiliado_id) DO UPDATE SET quantidade = EXCLUDED.quantidade`,
		produtoID, afiliadoID, quantidade,
	)
	if err != nil {
		return fmt.Errorf("upsert afiliado estoque: %w", err)
	}
	return nil
}

// ListarPorProduto devolve as alocações de um produto com o nome do afiliado.
func (r *AfiliadoEstoqueRepo) ListarPorProduto(produtoID string) ([]*entity.AfiliadoEstoque, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT ae.produto_id, ae.afiliado_id, ae.quantidade, a.nome_completo
		FROM afiliado_estoque ae
		JOIN afiliados a ON ae.afiliado_id = a.id
		WHERE ae.produto_id = $1`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list estoque por produto: %w", err)
	}
	defer rows.Close()
	var list []*entity.AfiliadoEstoque
	for rows.Next() {
		var e entity.AfiliadoEstoque
		if err := rows.Scan(&e.ProdutoID, &e.AfiliadoID, &e.Quantidade, &e.AfiliadoNome); err != nil {
			return nil, fmt.Errorf("scan afiliado estoque: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListarPorAfiliado devolve as alocações de um afiliado com o nome do produto.
func (r *AfiliadoEstoqueRepo) ListarPorAfiliado(afiliadoID string) ([]*entity.AfiliadoEstoque, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT ae.produto_id, ae.afiliado_id, ae.quantidade, p.nome
		FROM afiliado_estoque ae
		JOIN produtos p ON ae.produto_id = p.id
		WHERE ae.afiliado_id = $1`, afiliadoID)
	if err != nil {
		return nil, fmt.Errorf("list estoque por afiliado: %w", err)
	}
	defer rows.Close()
	var list []*entity.AfiliadoEstoque
	for rows.Next() {
		var e entity.AfiliadoEstoque
		if err := rows.Scan(&e.ProdutoID, &e.AfiliadoID, &e.Quantidade, &e.ProdutoNome); err != nil {
			return nil, fmt.Errorf("scan afiliado estoque: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// RemoverPorProduto exclui todas as alocações de um produto (deleção de produto).
func (r *AfiliadoEstoqueRepo) RemoverPorProduto(produtoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM afiliado_estoque WHERE produto_id = $1`, produtoID)
	if err != nil {
		return fmt.Errorf("delete estoque por produto: %w", err)
	}
	return nil
}
