package entity

// Fornecedor cadastro básico de fornecedor; referenciado opcionalmente por Produto.
type Fornecedor struct {
	ID      string
	Nome    string
	Cidade  string
	Contato string
}
