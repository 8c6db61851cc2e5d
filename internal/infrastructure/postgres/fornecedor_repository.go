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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Criar persiste um novo fornecedor.
func (r *FornecedorRepo) Criar(f *entity.Fornecedor) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO fornecedores (id, nome, cidade, contato) VALUES ($1, $2, $3, $4)`,
		f.ID, f.Nome, f.Cidade, f.Contato,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// BuscarPorID obtém um fornecedor por ID; nil quando não existe.
func (r *FornecedorRepo) BuscarPorID(id string) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome, cidade, COALESCE(contato, '') FROM fornecedores WHERE id = $1`, id,
	).Scan(&f.ID, &f.Nome, &f.Cidade, &f.Contato)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// Listar devolve todos os fornecedores em ordem alfabética.
func (r *FornecedorRepo) Listar() ([]*entity.Fornecedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, cidade, COALESCE(contato, '') FROM fornecedores ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.Cidade, &f.Contato); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Atualizar grava os campos do fornecedor; nil quando não existe.
func (r *FornecedorRepo) Atualizar(f *entity.Fornecedor) (*entity.Fornecedor, error) {
	var out entity.Fornecedor
	err := r.q.QueryRow(context.Background(),
		`UPDATE fornecedores SET nome = $2, cidade = $3, contato = $4 WHERE id = $1
		 RETURNING id, nome, cidade, COALESCE(contato, '')`,
		f.ID, f.Nome, f.Cidade, f.Contato,
	).Scan(&out.ID, &out.Nome, &out.Cidade, &out.Contato)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update fornecedor: %w", err)
	}
	return &out, nil
}

// Remover exclui o fornecedor; false quando não existia.
func (r *FornecedorRepo) Remover(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete fornecedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Existe verifica a existência do fornecedor (validação de FK no cadastro de produto).
func (r *FornecedorRepo) Existe(id string) (bool, error) {
	var found int
	err := r.q.QueryRow(context.Background(), `SELECT 1 FROM fornecedores WHERE id = $1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check fornecedor: %w", err)
	}
	return true, nil
}
