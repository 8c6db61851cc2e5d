package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado         = errors.New("recurso não encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrProdutosObrigatorios  = errors.New("Produtos são obrigatórios")
	ErrProdutoComVendas      = errors.New("Não é possível deletar produto com vendas vinculadas")
	ErrProdutoEmKits         = errors.New("Não é possível deletar produto vinculado a kits")
	ErrProdutoEmConjuntos    = errors.New("Não é possível deletar produto vinculado a conjuntos")
	ErrFornecedorInexistente = errors.New("Fornecedor não encontrado")
)
