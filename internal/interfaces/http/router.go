package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/backoffice-api/internal/application/usecase"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	RegistrarVenda *appvenda.RegistrarVendaUseCase
	ConsultaVenda  *appvenda.ConsultaVendaUseCase
	ReciboVenda    *appvenda.ReciboUseCase
	ProdutoUC      *usecase.ProdutoUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	AfiliadoUC     *usecase.AfiliadoUseCase
	KitUC          *usecase.KitUseCase
	ConjuntoUC     *usecase.ConjuntoUseCase
}

// Router registra as rotas da API. As rotas ficam na raiz, no mesmo formato
// que o painel já consome.
func Router(app *fiber.App, deps RouterDeps) {
	// Vendas
	vendas := app.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.RegistrarVenda, deps.ConsultaVenda, deps.ReciboVenda)
	vendas.Post("/", vendaHandler.Criar)
	vendas.Get("/", vendaHandler.Listar)
	vendas.Get("/:id", vendaHandler.BuscarPorID)
	vendas.Get("/:id/recibo", vendaHandler.Recibo)
	vendas.Put("/:id", vendaHandler.Atualizar)
	vendas.Delete("/:id", vendaHandler.Remover)

	// Produtos
	produtos := app.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.BuscarPorID)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Remover)

	// Fornecedores
	fornecedores := app.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Criar)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Get("/:id", fornecedorHandler.BuscarPorID)
	fornecedores.Put("/:id", fornecedorHandler.Atualizar)
	fornecedores.Delete("/:id", fornecedorHandler.Remover)

	// Afiliados e suas alocações de estoque
	afiliados := app.Group("/afiliados")
	afiliadoHandler := NewAfiliadoHandler(deps.AfiliadoUC)
	afiliados.Post("/", afiliadoHandler.Criar)
	afiliados.Get("/", afiliadoHandler.Listar)
	afiliados.Get("/:id", afiliadoHandler.BuscarPorID)
	afiliados.Put("/:id", afiliadoHandler.Atualizar)
	afiliados.Delete("/:id", afiliadoHandler.Remover)
	afiliados.Get("/:id/estoque", afiliadoHandler.ListarEstoque)
	afiliados.Put("/:id/estoque/:produto_id", afiliadoHandler.DefinirEstoque)

	// Kits
	kits := app.Group("/kits")
	kitHandler := NewKitHandler(deps.KitUC)
	kits.Post("/", kitHandler.Criar)
	kits.Get("/", kitHandler.Listar)
	kits.Get("/:id", kitHandler.BuscarPorID)
	kits.Put("/:id", kitHandler.Atualizar)
	kits.Delete("/:id", kitHandler.Remover)

	// Conjuntos
	conjuntos := app.Group("/conjuntos")
	conjuntoHandler := NewConjuntoHandler(deps.ConjuntoUC)
	conjuntos.Post("/", conjuntoHandler.Criar)
	conjuntos.Get("/", conjuntoHandler.Listar)
	conjuntos.Get("/:id", conjuntoHandler.BuscarPorID)
	conjuntos.Put("/:id", conjuntoHandler.Atualizar)
	conjuntos.Delete("/:id", conjuntoHandler.Remover)
}
