package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
)

// KitHandler trata as requisições HTTP de kits.
type KitHandler struct {
	uc *usecase.KitUseCase
}

// NewKitHandler constrói o handler.
func NewKitHandler(uc *usecase.KitUseCase) *KitHandler {
	return &KitHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar kit
// @Tags         kits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarKitRequest  true  "Dados do kit"
// @Success      201   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /kits [post]
func (h *KitHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarKitRequest
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
// @Summary      Listar kits
// @Tags         kits
// @Produce      json
// @Success      200  {array}  dto.KitResponse
// @Router       /kits [get]
func (h *KitHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar kit por ID
// @Tags         kits
// @Produce      json
// @Param        id   path  string  true  "ID do kit"
// @Success      200  {object}  dto.KitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /kits/{id} [get]
func (h *KitHandler) BuscarPorID(c *fiber.Ctx) error {
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
// @Summary      Atualizar kit
// @Description  Substitui nome e composição.
// @Tags         kits
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do kit"
// @Param        body  body  dto.AtualizarKitRequest  true  "Dados do kit"
// @Success      200   {object}  dto.KitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /kits/{id} [put]
func (h *KitHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarKitRequest
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
// @Summary      Deletar kit
// @Tags         kits
// @Produce      json
// @Param        id   path  string  true  "ID do kit"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /kits/{id} [delete]
func (h *KitHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Kit deletado com sucesso"})
}
