package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estoquepro/backoffice-api/internal/application/usecase"
	appvenda "github.com/estoquepro/backoffice-api/internal/application/venda"
	domvenda "github.com/estoquepro/backoffice-api/internal/domain/venda"
	infrapdf "github.com/estoquepro/backoffice-api/internal/infrastructure/pdf"
	"github.com/estoquepro/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoquepro/backoffice-api/internal/interfaces/http"
	"github.com/estoquepro/backoffice-api/pkg/config"
	"github.com/estoquepro/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	afiliadoRepo := postgres.NewAfiliadoRepository(pool)
	afiliadoEstoqueRepo := postgres.NewAfiliadoEstoqueRepository(pool)
	kitRepo := postgres.NewKitRepository(pool)
	conjuntoRepo := postgres.NewConjuntoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrarVendaUC := appvenda.NewRegistrarVendaUseCase(txRunner, domvenda.NewGeradorRelogio())
	consultaVendaUC := appvenda.NewConsultaVendaUseCase(vendaRepo, txRunner)
	reciboUC := appvenda.NewReciboUseCase(vendaRepo, infrapdf.NewMarotoReciboGenerator())

	produtoUC := usecase.NewProdutoUseCase(produtoRepo, fornecedorRepo, afiliadoEstoqueRepo, txRunner)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	afiliadoUC := usecase.NewAfiliadoUseCase(afiliadoRepo, afiliadoEstoqueRepo, produtoRepo)
	kitUC := usecase.NewKitUseCase(kitRepo, produtoRepo, txRunner)
	conjuntoUC := usecase.NewConjuntoUseCase(conjuntoRepo, produtoRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EstoquePro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrarVenda: registrarVendaUC,
		ConsultaVenda:  consultaVendaUC,
		ReciboVenda:    reciboUC,
		ProdutoUC:      produtoUC,
		FornecedorUC:   fornecedorUC,
		AfiliadoUC:     afiliadoUC,
		KitUC:          kitUC,
		ConjuntoUC:     conjuntoUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
