package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
)

// ConjuntoHandler trata as requisições HTTP de conjuntos.
type ConjuntoHandler struct {
	uc *usecase.ConjuntoUseCase
}

// NewConjuntoHandler constrói o handler.
func NewConjuntoHandler(uc *usecase.ConjuntoUseCase) *ConjuntoHandler {
	return &ConjuntoHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar conjunto
// @Tags         conjuntos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarConjuntoRequest  true  "Dados do conjunto"
// @Success      201   {object}  dto.ConjuntoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /conjuntos [post]
func (h *ConjuntoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarConjuntoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar conjuntos
// @Tags         conjuntos
// @Produce      json
// @Success      200  {array}  dto.ConjuntoResponse
// @Router       /conjuntos [get]
func (h *ConjuntoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar conjunto por ID
// @Tags         conjuntos
// @Produce      json
// @Param        id   path  string  true  "ID do conjunto"
// @Success      200  {object}  dto.ConjuntoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /conjuntos/{id} [get]
func (h *ConjuntoHandler) BuscarPorID(c *fiber.Ctx) error {
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
// @Summary      Atualizar conjunto
// @Description  Substitui nome e composição.
// @Tags         conjuntos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do conjunto"
// @Param        body  body  dto.AtualizarConjuntoRequest  true  "Dados do conjunto"
// @Success      200   {object}  dto.ConjuntoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /conjuntos/{id} [put]
func (h *ConjuntoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarConjuntoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Deletar conjunto
// @Tags         conjuntos
// @Produce      json
// @Param        id   path  string  true  "ID do conjunto"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /conjuntos/{id} [delete]
func (h *ConjuntoHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Conjunto deletado com sucesso"})
}
