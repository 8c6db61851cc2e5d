package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

var _ repository.ConjuntoRepository = (*ConjuntoRepo)(nil)

// ConjuntoRepo implementação de ConjuntoRepository sobre PostgreSQL.
// Espelha KitRepo sobre as tabelas conjuntos/conjunto_produtos.
type ConjuntoRepo struct {
	q Querier
}

// NewConjuntoRepository constrói o adaptador de conjuntos.
func NewConjuntoRepository(q Querier) *ConjuntoRepo {
	return &ConjuntoRepo{q: q}
}

// Criar persiste o conjunto e sua composição.
func (r *ConjuntoRepo) Criar(c *entity.Conjunto) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO conjuntos (id, nome) VALUES ($1, $2)`, c.ID, c.Nome)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert conjunto: %w", err)
	}
	return r.DefinirProdutos(c.ID, c.Produtos)
}

// BuscarPorID obtém o conjunto com composição; nil quando não existe.
func (r *ConjuntoRepo) BuscarPorID(id string) (*entity.Conjunto, error) {
	var c entity.Conjunto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome FROM conjuntos WHERE id = $1`, id).Scan(&c.ID, &c.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conjunto: %w", err)
	}
	produtos, err := r.ListarProdutos(id)
	if err != nil {
		return nil, err
	}
	c.Produtos = produtos
	return &c, nil
}

// Listar devolve todos os conjuntos com composição.
func (r *ConjuntoRepo) Listar() ([]*entity.Conjunto, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nome FROM conjuntos ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list conjuntos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Conjunto
	for rows.Next() {
		var c entity.Conjunto
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, fmt.Errorf("scan conjunto: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		produtos, err := r.ListarProdutos(c.ID)
		if err != nil {
			return nil, err
		}
		c.Produtos = produtos
	}
	return list, nil
}

// Atualizar grava o nome e substitui a composição; nil quando não existe.
func (r *ConjuntoRepo) Atualizar(c *entity.Conjunto) (*entity.Conjunto, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE conjuntos SET nome = $2 WHERE id = $1`, c.ID, c.Nome)
	if err != nil {
		return nil, fmt.Errorf("update conjunto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	if err := r.DefinirProdutos(c.ID, c.Produtos); err != nil {
		return nil, err
	}
	return r.BuscarPorID(c.ID)
}

// Remover exclui o conjunto e sua composição; false quando não existia.
func (r *ConjuntoRepo) Remover(id string) (bool, error) {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM conjunto_produtos WHERE conjunto_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete conjunto produtos: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM conjuntos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete conjunto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListarProdutos devolve a composição; vazia quando o conjunto não existe.
func (r *ConjuntoRepo) ListarProdutos(conjuntoID string) ([]entity.ConjuntoProduto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT conjunto_id, produto_id, quantidade FROM conjunto_produtos WHERE conjunto_id = $1`, conjuntoID)
	if err != nil {
		return nil, fmt.Errorf("list conjunto produtos: %w", err)
	}
	defer rows.Close()
	var itens []entity.ConjuntoProduto
	for rows.Next() {
		var cp entity.ConjuntoProduto
		if err := rows.Scan(&cp.ConjuntoID, &cp.ProdutoID, &cp.Quantidade); err != nil {
			return nil, fmt.Errorf("scan conjunto produto: %w", err)
		}
		itens = append(itens, cp)
	}
	return itens, rows.Err()
}

// DefinirProdutos substitui a composição inteira do conjunto.
func (r *ConjuntoRepo) DefinirProdutos(conjuntoID string, itens []entity.ConjuntoProduto) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM conjunto_produtos WHERE conjunto_id = $1`, conjuntoID); err != nil {
		return fmt.Errorf("clear conjunto produtos: %w", err)
	}
	for _, it := range itens {
		if _, err := r.q.Exec(context.Background(),
			`INSERT INTO conjunto_produtos (conjunto_id, produto_id, quantidade) VALUES ($1, $2, $3)`,
			conjuntoID, it.ProdutoID, it.Quantidade,
		); err != nil {
			return fmt.Errorf("insert conjunto produto: %w", err)
		}
	}
	return nil
}

// ContarPorProduto conta em quantos conjuntos o produto aparece.
func (r *ConjuntoRepo) ContarPorProduto(produtoID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM conjunto_produtos WHERE produto_id = $1`, produtoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count conjuntos por produto: %w", err)
	}
	return count, nil
}
