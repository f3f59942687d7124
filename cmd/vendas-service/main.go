package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/s3t20-labs/vendas-service/internal/api"
	"github.com/s3t20-labs/vendas-service/internal/config"
	"github.com/s3t20-labs/vendas-service/internal/database"
	"github.com/s3t20-labs/vendas-service/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	// Carregar configuração
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Iniciando vendas-service...")

	// Configurar modo do Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar ao banco de dados
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// Aplicar migrações
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatalf("Erro ao aplicar migrações: %v", err)
	}

	// Conectar ao Redis; o serviço degrada para sem cache quando indisponível
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Erro ao conectar ao Redis, resumo sem cache: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar repositórios
	clienteRepo := database.NewClienteRepository(db, logger)
	produtoRepo := database.NewProdutoRepository(db, logger)
	formaPagamentoRepo := database.NewFormaPagamentoRepository(db, logger)
	vendaRepo := database.NewVendaRepository(db, logger)

	// Inicializar serviços
	clienteService := services.NewClienteService(clienteRepo, logger)
	produtoService := services.NewProdutoService(produtoRepo, logger)
	formaPagamentoService := services.NewFormaPagamentoService(formaPagamentoRepo, logger)

	var cache services.ResumoCache
	if redis != nil {
		cache = redis
	}
	vendaService := services.NewVendaService(vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo, cache, logger)

	// Inicializar API
	apiHandler := api.NewAPI(clienteService, produtoService, formaPagamentoService, vendaService, logger)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Criar servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para sinais de terminação
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor em goroutine
	go func() {
		logger.Infof("Servidor iniciando em %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Erro ao iniciar servidor: %v", err)
		}
	}()

	// Esperar sinal de terminação
	<-quit
	logger.Info("Encerrando servidor...")

	// Contexto com timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful do servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Servidor forçado a encerrar: %v", err)
	}

	logger.Info("Servidor encerrado")
}

// setupLogger configura o logger conforme a configuração
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nível de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura o router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(api.RequestIDMiddleware())

	// Middleware de CORS para desenvolvimento
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Health check
	router.GET("/health", apiHandler.Health)

	// Clientes
	clientes := router.Group("/clientes")
	{
		clientes.GET("", apiHandler.ListClientes)
		clientes.GET("/:id", apiHandler.GetCliente)
		clientes.GET("/codigo/:codigo", apiHandler.GetClientePorCodigo)
		clientes.GET("/cidade/:cidade", apiHandler.GetClientesPorCidade)
		clientes.GET("/bairro/:bairro", apiHandler.GetClientesPorBairro)
		clientes.GET("/tipo/:tipo", apiHandler.GetClientesPorTipo)
		clientes.GET("/busca", apiHandler.SearchClientes)
		clientes.GET("/cidades", apiHandler.GetCidades)
		clientes.GET("/bairros", apiHandler.GetBairros)
		clientes.GET("/count", apiHandler.CountClientes)
		clientes.POST("", apiHandler.CreateCliente)
		clientes.PUT("/:id", apiHandler.UpdateCliente)
		clientes.DELETE("/:id", apiHandler.DeleteCliente)
	}

	// Produtos
	produtos := router.Group("/produtos")
	{
		produtos.GET("", apiHandler.ListProdutos)
		produtos.GET("/:id", apiHandler.GetProduto)
		produtos.GET("/codigo/:codigo", apiHandler.GetProdutoPorCodigo)
		produtos.GET("/categoria/:categoria", apiHandler.GetProdutosPorCategoria)
		produtos.GET("/categorias", apiHandler.GetCategorias)
		produtos.GET("/count", apiHandler.CountProdutos)
		produtos.POST("", apiHandler.CreateProduto)
		produtos.PUT("/:id", apiHandler.UpdateProduto)
		produtos.DELETE("/:id", apiHandler.DeleteProduto)
	}

	// Formas de pagamento
	formasPagamento := router.Group("/formas-pagamento")
	{
		formasPagamento.GET("", apiHandler.ListFormasPagamento)
		formasPagamento.GET("/:id", apiHandler.GetFormaPagamento)
		formasPagamento.GET("/codigo/:codigo", apiHandler.GetFormaPagamentoPorCodigo)
		formasPagamento.GET("/count", apiHandler.CountFormasPagamento)
		formasPagamento.POST("", apiHandler.CreateFormaPagamento)
		formasPagamento.PUT("/:id", apiHandler.UpdateFormaPagamento)
		formasPagamento.DELETE("/:id", apiHandler.DeleteFormaPagamento)
	}

	// Vendas
	vendas := router.Group("/vendas")
	{
		vendas.GET("", apiHandler.ListVendas)
		vendas.GET("/:id", apiHandler.GetVenda)
		vendas.GET("/codigo/:codigo", apiHandler.GetVendaPorCodigo)
		vendas.GET("/data/:data", apiHandler.GetVendasPorData)
		vendas.GET("/periodo", apiHandler.GetVendasPorPeriodo)
		vendas.GET("/cliente/:clienteId", apiHandler.GetVendasPorCliente)
		vendas.GET("/cliente/cidade/:cidade", apiHandler.GetVendasPorCidadeCliente)
		vendas.GET("/produto/:produtoId", apiHandler.GetVendasPorProduto)
		vendas.GET("/produto/categoria/:categoria", apiHandler.GetVendasPorCategoriaProduto)
		vendas.GET("/forma-pagamento/:formaPagamentoId", apiHandler.GetVendasPorFormaPagamento)
		vendas.GET("/resumo", apiHandler.GetResumoVendas)
		vendas.GET("/resumo/periodo", apiHandler.GetResumoVendasPorPeriodo)
		vendas.GET("/count", apiHandler.CountVendas)
		vendas.POST("", apiHandler.CreateVenda)
		vendas.PUT("/:id", apiHandler.UpdateVenda)
		vendas.DELETE("/:id", apiHandler.DeleteVenda)
	}

	return router
}
