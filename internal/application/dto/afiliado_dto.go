package dto

// CriarAfiliadoRequest entrada para criar um afiliado.
type CriarAfiliadoRequest struct {
	NomeCompleto string `json:"nome_completo"`
}

// AtualizarAfiliadoRequest entrada para atualizar um afiliado.
type AtualizarAfiliadoRequest struct {
	NomeCompleto string `json:"nome_completo"`
}

// AfiliadoResponse saída de um afiliado.
type AfiliadoResponse struct {
	ID           string `json:"id"`
	NomeCompleto string `json:"nome_completo"`
}

// DefinirEstoqueAfiliadoRequest grava a alocação de um produto para o afiliado.
// Quantidade <= 0 remove a alocação.
type DefinirEstoqueAfiliadoRequest struct {
	Quantidade int `json:"quantidade"`
}

// AfiliadoEstoqueResponse alocação de estoque vista pela rota do afiliado.
type AfiliadoEstoqueResponse struct {
	ProdutoID   string `json:"produto_id"`
	ProdutoNome string `json:"produto_nome,omitempty"`
	Quantidade  int    `json:"quantidade"`
}
