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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Criar persiste um novo produto. O ID vem do cliente (código do painel).
func (r *ProdutoRepo) Criar(p *entity.Produto) (*entity.Produto, error) {
	query := `
		INSERT INTO produtos (id, nome, descricao, estoque_fisico, estoque_site, preco, preco_compra, fornecedor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, nome, descricao, estoque_fisico, estoque_site, preco, preco_compra, fornecedor_id, created_at, updated_at`
	var out entity.Produto
	err := r.q.QueryRow(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.EstoqueFisico, p.EstoqueSite, p.Preco, p.PrecoCompra, p.FornecedorID,
	).Scan(
		&out.ID, &out.Nome, &out.Descricao, &out.EstoqueFisico, &out.EstoqueSite,
		&out.Preco, &out.PrecoCompra, &out.FornecedorID, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicado
		}
		return nil, fmt.Errorf("insert produto: %w", err)
	}
	return &out, nil
}

// BuscarPorID obtém um produto por ID com o fornecedor associado (LEFT JOIN).
func (r *ProdutoRepo) BuscarPorID(id string) (*entity.Produto, error) {
	query := `
		SELECT p.id, p.nome, p.descricao, p.estoque_fisico, p.estoque_site, p.preco, p.preco_compra,
		       p.fornecedor_id, p.created_at, p.updated_at,
		       f.nome, f.cidade, f.contato
		FROM produtos p
		LEFT JOIN fornecedores f ON p.fornecedor_id = f.id
		WHERE p.id = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// Listar devolve todos os produtos com fornecedor, mais recentes primeiro.
func (r *ProdutoRepo) Listar() ([]*entity.Produto, error) {
	query := `
		SELECT p.id, p.nome, p.descricao, p.estoque_fisico, p.estoque_site, p.preco, p.preco_compra,
		       p.fornecedor_id, p.created_at, p.updated_at,
		       f.nome, f.cidade, f.contato
		FROM produtos p
		LEFT JOIN fornecedores f ON p.fornecedor_id = f.id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Atualizar grava os campos editáveis e devolve a linha atualizada.
func (r *ProdutoRepo) Atualizar(p *entity.Produto) (*entity.Produto, error) {
	query := `
		UPDATE produtos
		SET nome = $2, descricao = $3, estoque_fisico = $4, estoque_site = $5,
		    preco = $6, preco_compra = $7, fornecedor_id = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, nome, descricao, estoque_fisico, estoque_site, preco, preco_compra, fornecedor_id, created_at, updated_at`
	var out entity.Produto
	err := r.q.QueryRow(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.EstoqueFisico, p.EstoqueSite, p.Preco, p.PrecoCompra, p.FornecedorID,
	).Scan(
		&out.ID, &out.Nome, &out.Descricao, &out.EstoqueFisico, &out.EstoqueSite,
		&out.Preco, &out.PrecoCompra, &out.FornecedorID, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update produto: %w", err)
	}
	return &out, nil
}

// Remover exclui o produto.
func (r *ProdutoRepo) Remover(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// DecrementarEstoqueSite baixa o estoque do site limitado em zero.
// Devolve false quando o produto não existe (nenhuma linha afetada).
func (r *ProdutoRepo) DecrementarEstoqueSite(produtoID string, quantidade int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_site = GREATEST(0, estoque_site - $1), updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		quantidade, produtoID,
	)
	if err != nil {
		return false, fmt.Errorf("decrementar estoque site: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementarEstoqueFisico baixa o estoque físico limitado em zero.
func (r *ProdutoRepo) DecrementarEstoqueFisico(produtoID string, quantidade int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_fisico = GREATEST(0, estoque_fisico - $1), updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		quantidade, produtoID,
	)
	if err != nil {
		return false, fmt.Errorf("decrementar estoque fisico: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListarFotos devolve as URLs das fotos do produto na ordem de exibição.
func (r *ProdutoRepo) ListarFotos(produtoID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT url_foto FROM produto_fotos WHERE produto_id = $1 ORDER BY ordem`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list fotos: %w", err)
	}
	defer rows.Close()
	var fotos []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan foto: %w", err)
		}
		fotos = append(fotos, url)
	}
	return fotos, rows.Err()
}

// RemoverFotos exclui todas as fotos do produto (usado na deleção).
func (r *ProdutoRepo) RemoverFotos(produtoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produto_fotos WHERE produto_id = $1`, produtoID)
	if err != nil {
		return fmt.Errorf("delete fotos: %w", err)
	}
	return nil
}

// scanProduto preenche o produto e o fornecedor opcional a partir do SELECT com JOIN.
func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var fornNome, fornCidade, fornContato *string
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.EstoqueFisico, &p.EstoqueSite, &p.Preco, &p.PrecoCompra,
		&p.FornecedorID, &p.CreatedAt, &p.UpdatedAt,
		&fornNome, &fornCidade, &fornContato,
	)
	if err != nil {
		return nil, err
	}
	if p.FornecedorID != nil {
		f := &entity.Fornecedor{ID: *p.FornecedorID}
		if fornNome != nil {
			f.Nome = *fornNome
		}
		if fornCidade != nil {
			f.Cidade = *fornCidade
		}
		if fornContato != nil {
			f.Contato = *fornContato
		}
		p.Fornecedor = f
	}
	return &p, nil
}
