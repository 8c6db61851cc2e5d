package entity

// Kit composto nomeado de produtos vendido como um único item de venda.
// Cada membro carrega a quantidade consumida por unidade do kit.
type Kit struct {
	ID       string
	Nome     string
	Produtos []KitProduto
}

// KitProduto linha de composição de um kit.
type KitProduto struct {
	KitID      string
	ProdutoID  string
	Quantidade int
}
