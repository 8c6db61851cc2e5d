package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
)

// VendaHandler trata as requisições HTTP de vendas.
type VendaHandler struct {
	registrar *appvenda.RegistrarVendaUseCase
	consulta  *appvenda.ConsultaVendaUseCase
	recibo    *appvenda.ReciboUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(
	registrar *appvenda.RegistrarVendaUseCase,
	consulta *appvenda.ConsultaVendaUseCase,
	recibo *appvenda.ReciboUseCase,
) *VendaHandler {
	return &VendaHandler{registrar: registrar, consulta: consulta, recibo: recibo}
}

// Criar godoc
// @Summary      Registrar venda
// @Description  Cria a venda e ajusta o estoque de cada item na mesma transação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarVendaRequest  true  "Dados da venda"
// @Success      201   {object}  dto.VendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /vendas [post]
func (h *VendaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.registrar.Registrar(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar vendas
// @Description  Sem parâmetros lista tudo; com data_inicio/data_fim filtra pelo período.
// @Tags         vendas
// @Produce      json
// @Param        data_inicio  query  string  false  "Início do período (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Fim do período (YYYY-MM-DD)"
// @Success      200  {array}   dto.VendaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /vendas [get]
func (h *VendaHandler) Listar(c *fiber.Ctx) error {
	inicio := c.Query("data_inicio")
	fim := c.Query("data_fim")

	var (
		out []*dto.VendaResponse
		err error
	)
	if inicio != "" || fim != "" {
		out, err = h.consulta.ListarPorPeriodo(inicio, fim)
	} else {
		out, err = h.consulta.Listar()
	}
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Buscar venda por ID
// @Tags         vendas
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [get]
func (h *VendaHandler) BuscarPorID(c *fiber.Ctx) error {
	out, err := h.consulta.BuscarPorID(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar venda
// @Description  Atualiza apenas o cabeçalho; não reexecuta o ajuste de estoque.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da venda"
// @Param        body  body  dto.AtualizarVendaRequest  true  "Dados da venda"
// @Success      200   {object}  dto.VendaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /vendas/{id} [put]
func (h *VendaHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.consulta.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Deletar venda
// @Description  Remove itens e cabeçalho; o estoque ajustado na criação não é revertido.
// @Tags         vendas
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [delete]
func (h *VendaHandler) Remover(c *fiber.Ctx) error {
	if err := h.consulta.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Message: "Venda deletada com sucesso"})
}

// Recibo godoc
// @Summary      Recibo da venda em PDF
// @Tags         vendas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id}/recibo [get]
func (h *VendaHandler) Recibo(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.recibo.Gerar(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdf)
}
