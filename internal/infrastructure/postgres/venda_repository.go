package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository sobre PostgreSQL (pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador de vendas. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const vendaColunas = `v.id, v.afiliado_id, v.tipo, v.total, v.data_venda, COALESCE(v.observacoes, ''), v.created_at, v.updated_at`

// Criar insere o cabeçalho da venda e devolve a linha criada (RETURNING).
// Colisão do ID gerado vira violação de unicidade -> ErrDuplicado, sem retry.
func (r *VendaRepo) Criar(v *entity.Venda) (*entity.Venda, error) {
	query := `
		INSERT INTO vendas (id, afiliado_id, tipo, total, data_venda, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, afiliado_id, tipo, total, data_venda, COALESCE(observacoes, ''), created_at, updated_at`
	var out entity.Venda
	err := r.q.QueryRow(context.Background(), query,
		v.ID, v.AfiliadoID, v.Tipo, v.Total, v.DataVenda, v.Observacoes,
	).Scan(
		&out.ID, &out.AfiliadoID, &out.Tipo, &out.Total, &out.DataVenda,
		&out.Observacoes, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicado
		}
		return nil, fmt.Errorf("insert venda: %w", err)
	}
	return &out, nil
}

// CriarItem insere um item da venda como veio no request (colunas não
// referenciadas ficam nulas).
func (r *VendaRepo) CriarItem(item *entity.VendaItem) error {
	query := `
		INSERT INTO venda_itens (venda_id, produto_id, conjunto_id, kit_id, quantidade, preco_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.VendaID, item.ProdutoID, item.ConjuntoID, item.KitID,
		item.Quantidade, item.PrecoUnitario, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert venda item: %w", err)
	}
	return nil
}

// BuscarPorID obtém a venda com o nome do afiliado; nil quando não existe.
func (r *VendaRepo) BuscarPorID(id string) (*entity.Venda, error) {
	query := `
		SELECT ` + vendaColunas + `, a.nome_completo
		FROM vendas v
		LEFT JOIN afiliados a ON v.afiliado_id = a.id
		WHERE v.id = $1`
	v, err := scanVenda(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return v, nil
}

// Listar devolve todas as vendas, mais recentes primeiro.
func (r *VendaRepo) Listar() ([]*entity.Venda, error) {
	query := `
		SELECT ` + vendaColunas + `, a.nome_completo
		FROM vendas v
		LEFT JOIN afiliados a ON v.afiliado_id = a.id
		ORDER BY v.data_venda DESC`
	return r.listar(query)
}

// ListarPorPeriodo filtra por data_venda; limites nulos são ignorados.
func (r *VendaRepo) ListarPorPeriodo(inicio, fim *time.Time) ([]*entity.Venda, error) {
	query := `
		SELECT ` + vendaColunas + `, a.nome_completo
		FROM vendas v
		LEFT JOIN afiliados a ON v.afiliado_id = a.id`
	var args []any
	var conds []string
	if inicio != nil {
		args = append(args, *inicio)
		conds = append(conds, fmt.Sprintf("v.data_venda >= $%d", len(args)))
	}
	if fim != nil {
		args = append(args, *fim)
		conds = append(conds, fmt.Sprintf("v.data_venda <= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY v.data_venda DESC"
	return r.listar(query, args...)
}

func (r *VendaRepo) listar(query string, args ...any) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// ListarItens devolve os itens da venda com os nomes de produto/conjunto/kit.
func (r *VendaRepo) ListarItens(vendaID string) ([]*entity.VendaItem, error) {
	query := `
		SELECT vi.id, vi.venda_id, vi.produto_id, vi.conjunto_id, vi.kit_id,
		       vi.quantidade, vi.preco_unitario, vi.subtotal,
		       COALESCE(p.nome, ''), COALESCE(c.nome, ''), COALESCE(k.nome, '')
		FROM venda_itens vi
		LEFT JOIN produtos p ON vi.produto_id = p.id
		LEFT JOIN conjuntos c ON vi.conjunto_id = c.id
		LEFT JOIN kits k ON vi.kit_id = k.id
		WHERE vi.venda_id = $1`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list venda itens: %w", err)
	}
	defer rows.Close()
	var itens []*entity.VendaItem
	for rows.Next() {
		var it entity.VendaItem
		if err := rows.Scan(
			&it.ID, &it.VendaID, &it.ProdutoID, &it.ConjuntoID, &it.KitID,
			&it.Quantidade, &it.PrecoUnitario, &it.Subtotal,
			&it.ProdutoNome, &it.ConjuntoNome, &it.KitNome,
		); err != nil {
			return nil, fmt.Errorf("scan venda item: %w", err)
		}
		itens = append(itens, &it)
	}
	return itens, rows.Err()
}

// Atualizar grava o cabeçalho da venda; não reexecuta ajuste de estoque.
// Devolve nil quando a venda não existe.
func (r *VendaRepo) Atualizar(v *entity.Venda) (*entity.Venda, error) {
	query := `
		UPDATE vendas
		SET afiliado_id = $2, tipo = $3, total = $4, observacoes = $5, data_venda = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, afiliado_id, tipo, total, data_venda, COALESCE(observacoes, ''), created_at, updated_at`
	var out entity.Venda
	err := r.q.QueryRow(context.Background(), query,
		v.ID, v.AfiliadoID, v.Tipo, v.Total, v.Observacoes, v.DataVenda,
	).Scan(
		&out.ID, &out.AfiliadoID, &out.Tipo, &out.Total, &out.DataVenda,
		&out.Observacoes, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update venda: %w", err)
	}
	return &out, nil
}

// RemoverItens exclui os itens da venda (antes do cabeçalho, na mesma tx).
func (r *VendaRepo) RemoverItens(vendaID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM venda_itens WHERE venda_id = $1`, vendaID)
	if err != nil {
		return fmt.Errorf("delete venda itens: %w", err)
	}
	return nil
}

// Remover exclui o cabeçalho; false quando não existia. A exclusão não
// reverte os decrementos de estoque feitos na criação.
func (r *VendaRepo) Remover(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete venda: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ContarPorProduto conta itens de venda que referenciam o produto.
func (r *VendaRepo) ContarPorProduto(produtoID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM venda_itens WHERE produto_id = $1`, produtoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count vendas por produto: %w", err)
	}
	return count, nil
}

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	var afiliadoNome *string
	err := row.Scan(
		&v.ID, &v.AfiliadoID, &v.Tipo, &v.Total, &v.DataVenda,
		&v.Observacoes, &v.CreatedAt, &v.UpdatedAt, &afiliadoNome,
	)
	if err != nil {
		return nil, err
	}
	if afiliadoNome != nil {
		v.AfiliadoNome = *afiliadoNome
	}
	return &v, nil
}
