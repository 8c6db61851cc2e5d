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

var _ repository.AfiliadoRepository = (*AfiliadoRepo)(nil)

// AfiliadoRepo implementação de AfiliadoRepository sobre PostgreSQL.
type AfiliadoRepo struct {
	q Querier
}

// NewAfiliadoRepository constrói o adaptador de afiliados.
func NewAfiliadoRepository(q Querier) *AfiliadoRepo {
	return &AfiliadoRepo{q: q}
}

// Criar persiste um novo afiliado.
func (r *AfiliadoRepo) Criar(a *entity.Afiliado) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO afiliados (id, nome_completo) VALUES ($1, $2)`, a.ID, a.NomeCompleto)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert afiliado: %w", err)
	}
	return nil
}

// BuscarPorID obtém um afiliado por ID; nil quando não existe.
func (r *AfiliadoRepo) BuscarPorID(id string) (*entity.Afiliado, error) {
	var a entity.Afiliado
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome_completo FROM afiliados WHERE id = $1`, id,
	).Scan(&a.ID, &a.NomeCompleto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get afiliado: %w", err)
	}
	return &a, nil
}

// Listar devolve todos os afiliados em ordem alfabética.
func (r *AfiliadoRepo) Listar() ([]*entity.Afiliado, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome_completo FROM afiliados ORDER BY nome_completo`)
	if err != nil {
		return nil, fmt.Errorf("list afiliados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Afiliado
	for rows.Next() {
		var a entity.Afiliado
		if err := rows.Scan(&a.ID, &a.NomeCompleto); err != nil {
			return nil, fmt.Errorf("scan afiliado: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Atualizar grava o nome do afiliado; nil quando não existe.
func (r *AfiliadoRepo) Atualizar(a *entity.Afiliado) (*entity.Afiliado, error) {
	var out entity.Afiliado
	err := r.q.QueryRow(context.Background(),
		`UPDATE afiliados SET nome_completo = $2 WHERE id = $1 RETURNING id, nome_completo`,
		a.ID, a.NomeCompleto,
	).Scan(&out.ID, &out.NomeCompleto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update afiliado: %w", err)
	}
	return &out, nil
}

// Remover exclui o afiliado; false quando não existia.
func (r *AfiliadoRepo) Remover(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM afiliados WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete afiliado: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
