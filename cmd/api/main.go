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

	"garantias/internal/application/auth"
	"garantias/internal/application/backup"
	"garantias/internal/application/usecase"
	"garantias/internal/infrastructure/postgres"
	httpRouter "garantias/internal/interfaces/http"
	"garantias/internal/pubsub"
	pubsubmemory "garantias/internal/pubsub/memory"
	"garantias/pkg/config"
	"garantias/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicando schema")
	}

	garantiaRepo := postgres.NewGarantiaRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	pessoaRepo := postgres.NewPessoaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	devolucaoRepo := postgres.NewDevolucaoRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bus := pubsubmemory.NewPubSub()
	defer bus.Close()

	codec := backup.NewCodec(backup.Repos{
		Garantias:    garantiaRepo,
		Lotes:        loteRepo,
		Pessoas:      pessoaRepo,
		Fornecedores: fornecedorRepo,
		Devolucoes:   devolucaoRepo,
		Empresa:      empresaRepo,
	})
	orchestrator := backup.NewOrchestrator(codec, txRunner, bus, log)

	garantiaUC := usecase.NewGarantiaUseCase(garantiaRepo, log)
	loteUC := usecase.NewLoteUseCase(loteRepo, log)
	pessoaUC := usecase.NewPessoaUseCase(pessoaRepo, log)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo, log)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, log)
	devolucaoUC := usecase.NewDevolucaoUseCase(devolucaoRepo, txRunner, log)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo, log)
	statusUC := usecase.NewStatusUseCase(statusRepo, log)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT, log)

	// Consumidor do broadcast de dados alterados: hoje apenas registra no log;
	// clientes com cache (UI desktop) assinam o mesmo tópico.
	go func() {
		msgs, err := bus.Subscribe(ctx, pubsub.TopicDadosAlterados)
		if err != nil {
			log.Error().Err(err).Msg("assinando broadcast de dados alterados")
			return
		}
		for msg := range msgs {
			log.Info().Str("message_id", msg.UUID).Msg("dados alterados: caches de leitura devem recarregar")
			msg.Ack()
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // arquivos de backup podem ser grandes
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Garantias API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GarantiaUC:   garantiaUC,
		LoteUC:       loteUC,
		PessoaUC:     pessoaUC,
		FornecedorUC: fornecedorUC,
		ProdutoUC:    produtoUC,
		DevolucaoUC:  devolucaoUC,
		EmpresaUC:    empresaUC,
		StatusUC:     statusUC,
		AuthUC:       authUC,
		BackupCodec:  codec,
		BackupOrch:   orchestrator,
		JWTSecret:    cfg.JWT.Secret,
		CookieTTL:    cfg.JWT.Expiration,
		SecureCookie: cfg.App.Env != "development",
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
