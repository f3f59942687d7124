package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/s3t20-labs/vendas-service/internal/services"
	"github.com/sirupsen/logrus"
)

// API agrupa os handlers de todos os recursos
type API struct {
	clienteService        *services.ClienteService
	produtoService        *services.ProdutoService
	formaPagamentoService *services.FormaPagamentoService
	vendaService          *services.VendaService
	logger                *logrus.Logger
}

// NewAPI cria uma nova instância da API
func NewAPI(
	clienteService *services.ClienteService,
	produtoService *services.ProdutoService,
	formaPagamentoService *services.FormaPagamentoService,
	vendaService *services.VendaService,
	logger *logrus.Logger,
) *API {
	return &API{
		clienteService:        clienteService,
		produtoService:        produtoService,
		formaPagamentoService: formaPagamentoService,
		vendaService:          vendaService,
		logger:                logger,
	}
}

// RequestIDMiddleware atribui um id único a cada requisição e o propaga no
// header de resposta
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Health responde o status do serviço
func (api *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"service":   "vendas-service",
	})
}

// parseID interpreta o parâmetro de rota :id. Responde 400 e retorna false
// quando o valor não é um inteiro.
func (api *API) parseID(c *gin.Context, nome string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(nome), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("ID inválido", []models.ErrorDetail{
			{Field: nome, Issue: "deve ser um inteiro"},
		}))
		return 0, false
	}
	return id, true
}

// responderErro mapeia erros de serviço para o status HTTP e o corpo
// padronizado: não encontrado → 404, código duplicado e referência
// inexistente → 400, o restante → 500.
func (api *API) responderErro(c *gin.Context, err error, recurso string) {
	switch {
	case errors.Is(err, services.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, models.NewNotFoundError(recurso+" não encontrado(a)"))
	case errors.Is(err, services.ErrCodigoDuplicado):
		c.JSON(http.StatusBadRequest, models.NewDuplicateCodeError("Código já cadastrado"))
	case errors.Is(err, services.ErrReferenciaInvalida):
		c.JSON(http.StatusBadRequest, models.NewInvalidReferenceError("Referência a registro inexistente"))
	default:
		api.logger.WithError(err).WithField("recurso", recurso).Error("Erro interno")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Erro interno do servidor"))
	}
}

// responderBindError responde 400 para payload malformado ou inválido
func (api *API) responderBindError(c *gin.Context, err error) {
	api.logger.WithError(err).Debug("Payload inválido")
	c.JSON(http.StatusBadRequest, models.NewValidationError("Requisição inválida", []models.ErrorDetail{
		{Field: "body", Issue: err.Error()},
	}))
}

// responderDelete traduz o resultado booleano de um delete em 204 ou 404
func (api *API) responderDelete(c *gin.Context, deletado bool, err error, recurso string) {
	if err != nil {
		api.responderErro(c, err, recurso)
		return
	}
	if !deletado {
		c.JSON(http.StatusNotFound, models.NewNotFoundError(recurso+" não encontrado(a)"))
		return
	}
	c.Status(http.StatusNoContent)
}
