package entity

// Afiliado revendedor que pode manter uma alocação própria de estoque físico
// por produto (ver AfiliadoEstoque).
type Afiliado struct {
	ID           string
	NomeCompleto string
}

// AfiliadoEstoque quantidade de um produto em posse de um afiliado.
// Invariante: Quantidade > 0 — quando o saldo chega a zero ou menos,
// a linha é removida em vez de persistida com valor não positivo.
type AfiliadoEstoque struct {
	ProdutoID    string
	AfiliadoID   string
	Quantidade   int
	AfiliadoNome string // via JOIN, somente leitura
	ProdutoNome  string // via JOIN, somente leitura
}
