package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/domain"
)

// respostaErro traduz erros de domínio para o par (status, {"error": "..."})
// que o painel espera. Erros desconhecidos viram 500 com a mensagem crua.
func respostaErro(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado),
		errors.Is(err, domain.ErrFornecedorInexistente):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrEntradaInvalida),
		errors.Is(err, domain.ErrProdutosObrigatorios),
		errors.Is(err, domain.ErrDuplicado):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrProdutoComVendas),
		errors.Is(err, domain.ErrProdutoEmKits),
		errors.Is(err, domain.ErrProdutoEmConjuntos):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

// corpoInvalido resposta padrão quando o JSON do corpo não parseia.
func corpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo da requisição inválido"})
}

// naoEncontrado 404 para os casos de uso que devolvem nil em vez de erro.
func naoEncontrado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: domain.ErrNaoEncontrado.Error()})
}
