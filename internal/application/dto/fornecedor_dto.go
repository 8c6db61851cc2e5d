package dto

// CriarFornecedorRequest entrada para criar um fornecedor.
type CriarFornecedorRequest struct {
	Nome    string `json:"nome"`
	Cidade  string `json:"cidade"`
	Contato string `json:"contato"`
}

// AtualizarFornecedorRequest entrada para atualizar um fornecedor.
type AtualizarFornecedorRequest struct {
	Nome    string `json:"nome"`
	Cidade  string `json:"cidade"`
	Contato string `json:"contato"`
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Cidade  string `json:"cidade"`
	Contato string `json:"contato"`
}
