package dto

// ErrorResponse corpo de erro no formato que o painel consome: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensagemResponse corpo de confirmação para operações sem payload de retorno.
type MensagemResponse struct {
	Message string `json:"message"`
}
