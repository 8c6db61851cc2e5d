package dto

// ComposicaoItemRequest linha de composição de um kit ou conjunto.
type ComposicaoItemRequest struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
}

// CriarKitRequest entrada para criar um kit com sua composição.
type CriarKitRequest struct {
	Nome     string                  `json:"nome"`
	Produtos []ComposicaoItemRequest `json:"produtos"`
}

// AtualizarKitRequest substitui nome e composição do kit.
type AtualizarKitRequest struct {
	Nome     string                  `json:"nome"`
	Produtos []ComposicaoItemRequest `json:"produtos"`
}

// ComposicaoItemResponse linha de composição na resposta.
type ComposicaoItemResponse struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
}

// KitResponse saída de um kit.
type KitResponse struct {
	ID       string                   `json:"id"`
	Nome     string                   `json:"nome"`
	Produtos []ComposicaoItemResponse `json:"produtos"`
}

// CriarConjuntoRequest entrada para criar um conjunto com sua composição.
type CriarConjuntoRequest struct {
	Nome     string                  `json:"nome"`
	Produtos []ComposicaoItemRequest `json:"produtos"`
}

// AtualizarConjuntoRequest substitui nome e composição do conjunto.
type AtualizarConjuntoRequest struct {
	Nome     string                  `json:"nome"`
	Produtos []ComposicaoItemRequest `json:"produtos"`
}

// ConjuntoResponse saída de um conjunto.
type ConjuntoResponse struct {
	ID       string                   `json:"id"`
	Nome     string                   `json:"nome"`
	Produtos []ComposicaoItemResponse `json:"produtos"`
}
