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

var _ repository.KitRepository = (*KitRepo)(nil)

// KitRepo implementação de KitRepository sobre PostgreSQL.
type KitRepo struct {
	q Querier
}

// NewKitRepository constrói o adaptador de kits. Passar pool ou tx (Querier).
func NewKitRepository(q Querier) *KitRepo {
	return &KitRepo{q: q}
}

// Criar persiste o kit e sua composição.
func (r *KitRepo) Criar(k *entity.Kit) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO kits (id, nome) VALUES ($1, $2)`, k.ID, k.Nome)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert kit: %w", err)
	}
	return r.DefinirProdutos(k.ID, k.Produtos)
}

// BuscarPorID obtém o kit com sua composição; nil quando não existe.
func (r *KitRepo) BuscarPorID(id string) (*entity.Kit, error) {
	var k entity.Kit
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome FROM kits WHERE id = $1`, id).Scan(&k.ID, &k.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kit: %w", err)
	}
	produtos, err := r.ListarProdutos(id)
	if err != nil {
		return nil, err
	}
	k.Produtos = produtos
	return &k, nil
}

// Listar devolve todos os kits com composição.
func (r *KitRepo) Listar() ([]*entity.Kit, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nome FROM kits ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list kits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kit
	for rows.Next() {
		var k entity.Kit
		if err := rows.Scan(&k.ID, &k.Nome); err != nil {
			return nil, fmt.Errorf("scan kit: %w", err)
		}
		list = append(list, &k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, k := range list {
		produtos, err := r.ListarProdutos(k.ID)
		if err != nil {
			return nil, err
		}
		k.Produtos = produtos
	}
	return list, nil
}

// Atualizar grava o nome e substitui a composição; nil quando não existe.
func (r *KitRepo) Atualizar(k *entity.Kit) (*entity.Kit, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE kits SET nome = $2 WHERE id = $1`, k.ID, k.Nome)
	if err != nil {
		return nil, fmt.Errorf("update kit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	if err := r.DefinirProdutos(k.ID, k.Produtos); err != nil {
		return nil, err
	}
	return r.BuscarPorID(k.ID)
}

// Remover exclui o kit e sua composição; false quando não existia.
func (r *KitRepo) Remover(id string) (bool, error) {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM kit_produtos WHERE kit_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete kit produtos: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM kits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete kit: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListarProdutos devolve a composição do kit; vazia quando o kit não existe.
func (r *KitRepo) ListarProdutos(kitID string) ([]entity.KitProduto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT kit_id, produto_id, quantidade FROM kit_produtos WHERE kit_id = $1`, kitID)
	if err != nil {
		return nil, fmt.Errorf("list kit produtos: %w", err)
	}
	defer rows.Close()
	var itens []entity.KitProduto
	for rows.Next() {
		var kp entity.KitProduto
		if err := rows.Scan(&kp.KitID, &kp.ProdutoID, &kp.Quantidade); err != nil {
			return nil, fmt.Errorf("scan kit produto: %w", err)
		}
		itens = append(itens, kp)
	}
	return itens, rows.Err()
}

// DefinirProdutos substitui a composição inteira do kit.
func (r *KitRepo) DefinirProdutos(kitID string, itens []entity.KitProduto) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM kit_produtos WHERE kit_id = $1`, kitID); err != nil {
		return fmt.Errorf("clear kit produtos: %w", err)
	}
	for _, it := range itens {
		if _, err := r.q.Exec(context.Background(),
			`INSERT INTO kit_produtos (kit_id, produto_id, quantidade) VALUES ($1, $2, $3)`,
			kitID, it.ProdutoID, it.Quantidade,
		); err != nil {
			return fmt.Errorf("insert kit produto: %w", err)
		}
	}
	return nil
}

// ContarPorProduto conta em quantos kits o produto aparece (checagem na deleção de produto).
func (r *KitRepo) ContarPorProduto(produtoID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM kit_produtos WHERE produto_id = $1`, produtoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count kits por produto: %w", err)
	}
	return count, nil
}
