package entity

// Conjunto composto de produtos análogo ao Kit, mantido como cadastro
// separado porque o painel trata kits e conjuntos como coleções distintas.
type Conjunto struct {
	ID       string
	Nome     string
	Produtos []ConjuntoProduto
}

// ConjuntoProduto linha de composição de um conjunto.
type ConjuntoProduto struct {
	ConjuntoID string
	ProdutoID  string
	Quantidade int
}
