package http

import (
	"github.com/gofiber/fiber/v2"

	"garantias/internal/application/auth"
	"garantias/internal/application/backup"
	"garantias/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	GarantiaUC   *usecase.GarantiaUseCase
	LoteUC       *usecase.LoteUseCase
	PessoaUC     *usecase.PessoaUseCase
	FornecedorUC *usecase.FornecedorUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	DevolucaoUC  *usecase.DevolucaoUseCase
	EmpresaUC    *usecase.EmpresaUseCase
	StatusUC     *usecase.StatusUseCase
	AuthUC       *auth.UseCase
	BackupCodec  *backup.Codec
	BackupOrch   *backup.Orchestrator
	JWTSecret    string
	CookieTTL    int  // minutos
	SecureCookie bool // true fora de development
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login/register públicos; /me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieTTL, deps.SecureCookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", SessionMiddleware(deps.JWTSecret), authHandler.Me)

	// Rotas protegidas (cookie de sessão ou Bearer token)
	protected := api.Group("/", SessionMiddleware(deps.JWTSecret))

	garantias := protected.Group("/garantias")
	garantiaHandler := NewGarantiaHandler(deps.GarantiaUC)
	garantias.Post("/", garantiaHandler.Create)
	garantias.Get("/", garantiaHandler.List)
	garantias.Delete("/", garantiaHandler.Clear)
	garantias.Get("/:id", garantiaHandler.GetByID)
	garantias.Put("/:id", garantiaHandler.Update)
	garantias.Delete("/:id", garantiaHandler.Delete)

	lotes := protected.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Delete("/", loteHandler.Clear)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Put("/:id", loteHandler.Update)
	lotes.Delete("/:id", loteHandler.Delete)

	pessoas := protected.Group("/pessoas")
	pessoaHandler := NewPessoaHandler(deps.PessoaUC)
	pessoas.Post("/", pessoaHandler.Create)
	pessoas.Get("/", pessoaHandler.List)
	pessoas.Delete("/", pessoaHandler.Clear)
	pessoas.Get("/:id", pessoaHandler.GetByID)
	pessoas.Put("/:id", pessoaHandler.Update)
	pessoas.Delete("/:id", pessoaHandler.Delete)

	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Delete("/", fornecedorHandler.Clear)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Delete("/", produtoHandler.Clear)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	devolucoes := protected.Group("/devolucoes")
	devolucaoHandler := NewDevolucaoHandler(deps.DevolucaoUC)
	devolucoes.Post("/", devolucaoHandler.Create)
	devolucoes.Get("/", devolucaoHandler.List)
	devolucoes.Delete("/", devolucaoHandler.Clear)
	devolucoes.Get("/:id", devolucaoHandler.GetByID)
	devolucoes.Put("/:id", devolucaoHandler.Update)
	devolucoes.Delete("/:id", devolucaoHandler.Delete)

	empresa := protected.Group("/empresa")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresa.Get("/", empresaHandler.Get)
	empresa.Put("/", empresaHandler.Save)
	empresa.Delete("/", empresaHandler.Clear)

	status := protected.Group("/status")
	statusHandler := NewStatusHandler(deps.StatusUC)
	status.Post("/", statusHandler.Create)
	status.Get("/", statusHandler.List)
	status.Put("/:id", statusHandler.Update)
	status.Delete("/:id", statusHandler.Delete)

	backupGroup := protected.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupCodec, deps.BackupOrch)
	backupGroup.Get("/exportar", backupHandler.Exportar)
	backupGroup.Post("/importar", backupHandler.Importar)
	backupGroup.Post("/confirmar", backupHandler.Confirmar)
	backupGroup.Post("/cancelar", backupHandler.Cancelar)
	backupGroup.Get("/estado", backupHandler.Estado)
}
