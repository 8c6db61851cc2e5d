package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/application/usecase"
)

// ProdutoHandler trata as requisições HTTP de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
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
// @Summary      Listar produtos
// @Description  Com busca= filtra por nome/descrição/id, ignorando acentos e caixa.
// @Tags         produtos
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca"
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("busca"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [get]
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
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
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "Dados do produto"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarProdutoRequest
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
// @Summary      Deletar produto
// @Description  Recusa a remoção quando o produto tem vendas, kits ou conjuntos vinculados.
// @Tags         produtos
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [delete]
func (h *ProdutoHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Produto deletado com sucesso"})
}
