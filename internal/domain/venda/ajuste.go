package venda

// AjusteResultado desfecho de um ajuste de estoque para um par (produto, quantidade).
type AjusteResultado int

const (
	// AjusteAplicado o estoque correspondente foi decrementado.
	AjusteAplicado AjusteResultado = iota + 1
	// AjusteIgnoradoSemRegistro venda física com afiliado que não mantém o
	// produto: o ajuste é pulado sem falhar a venda.
	AjusteIgnoradoSemRegistro
	// AjusteIgnoradoNaoEncontrado o produto referenciado não existe mais;
	// o update não afetou nenhuma linha.
	AjusteIgnoradoNaoEncontrado
)

// Ajuste registro de um ajuste de estoque tentado durante uma venda.
// Mantido como valor (e não como efeito implícito) para que logs e testes
// distingam um decremento real de um no-op.
type Ajuste struct {
	ProdutoID  string
	Quantidade int
	Resultado  AjusteResultado
}

func (r AjusteResultado) String() string {
	switch r {
	case AjusteAplicado:
		return "aplicado"
	case AjusteIgnoradoSemRegistro:
		return "ignorado_sem_registro"
	case AjusteIgnoradoNaoEncontrado:
		return "ignorado_nao_encontrado"
	}
	return "desconhecido"
}
