package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
)

// AfiliadoHandler trata as requisições HTTP de afiliados e de suas alocações
// de estoque físico.
type AfiliadoHandler struct {
	uc *usecase.AfiliadoUseCase
}

// NewAfiliadoHandler constrói o handler.
func NewAfiliadoHandler(uc *usecase.AfiliadoUseCase) *AfiliadoHandler {
	return &AfiliadoHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar afiliado
// @Tags         afiliados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarAfiliadoRequest  true  "Dados do afiliado"
// @Success      201   {object}  dto.AfiliadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /afiliados [post]
func (h *AfiliadoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarAfiliadoRequest
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
// @Summary      Listar afiliados
// @Tags         afiliados
// @Produce      json
// @Success      200  {array}  dto.AfiliadoResponse
// @Router       /afiliados [get]
func (h *AfiliadoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar afiliado por ID
// @Tags         afiliados
// @Produce      json
// @Param        id   path  string  true  "ID do afiliado"
// @Success      200  {object}  dto.AfiliadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /afiliados/{id} [get]
func (h *AfiliadoHandler) BuscarPorID(c *fiber.Ctx) error {
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
// @Summary      Atualizar afiliado
// @Tags         afiliados
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do afiliado"
// @Param        body  body  dto.AtualizarAfiliadoRequest  true  "Dados do afiliado"
// @Success      200   {object}  dto.AfiliadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /afiliados/{id} [put]
func (h *AfiliadoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarAfiliadoRequest
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
// @Summary      Deletar afiliado
// @Tags         afiliados
// @Produce      json
// @Param        id   path  string  true  "ID do afiliado"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /afiliados/{id} [delete]
func (h *AfiliadoHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Afiliado deletado com sucesso"})
}

// ListarEstoque godoc
// @Summary      Listar alocações de estoque do afiliado
// @Tags         afiliados
// @Produce      json
// @Param        id   path  string  true  "ID do afiliado"
// @Success      200  {array}   dto.AfiliadoEstoqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /afiliados/{id}/estoque [get]
func (h *AfiliadoHandler) ListarEstoque(c *fiber.Ctx) error {
	out, err := h.uc.ListarEstoque(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// DefinirEstoque godoc
// @Summary      Definir alocação de estoque do afiliado para um produto
// @Description  Quantidade <= 0 remove a alocação.
// @Tags         afiliados
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID do afiliado"
// @Param        produto_id  path  string  true  "ID do produto"
// @Param        body        body  dto.DefinirEstoqueAfiliadoRequest  true  "Quantidade alocada"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /afiliados/{id}/estoque/{produto_id} [put]
func (h *AfiliadoHandler) DefinirEstoque(c *fiber.Ctx) error {
	var in dto.DefinirEstoqueAfiliadoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.DefinirEstoque(c.Params("id"), c.Params("produto_id"), in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Estoque do afiliado atualizado"})
}
