package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
)

// FornecedorHandler trata as requisições HTTP de fornecedores.
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarFornecedorRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /fornecedores [post]
func (h *FornecedorHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Produce      json
// @Success      200  {array}  dto.FornecedorResponse
// @Router       /fornecedores [get]
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar fornecedor por ID
// @Tags         fornecedores
// @Produce      json
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.FornecedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fornecedores/{id} [get]
func (h *FornecedorHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do fornecedor"
// @Param        body  body  dto.AtualizarFornecedorRequest  true  "Dados do fornecedor"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /fornecedores/{id} [put]
func (h *FornecedorHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Deletar fornecedor
// @Tags         fornecedores
// @Produce      json
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fornecedores/{id} [delete]
func (h *FornecedorHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Fornecedor deletado com sucesso"})
}
