package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/s3t20-labs/vendas-service/internal/models"
)

// ListFormasPagamento lista todas as formas de pagamento
func (api *API) ListFormasPagamento(c *gin.Context) {
	formas, err := api.formaPagamentoService.ListarTodos()
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusOK, formas)
}

// GetFormaPagamento busca uma forma de pagamento pelo id
func (api *API) GetFormaPagamento(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	forma, err := api.formaPagamentoService.BuscarPorID(id)
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusOK, forma)
}

// GetFormaPagamentoPorCodigo busca uma forma de pagamento pelo código único
func (api *API) GetFormaPagamentoPorCodigo(c *gin.Context) {
	forma, err := api.formaPagamentoService.BuscarPorCodigo(c.Param("codigo"))
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusOK, forma)
}

// CountFormasPagamento retorna o total de formas de pagamento
func (api *API) CountFormasPagamento(c *gin.Context) {
	total, err := api.formaPagamentoService.Contar()
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// CreateFormaPagamento cadastra uma nova forma de pagamento
func (api *API) CreateFormaPagamento(c *gin.Context) {
	var req models.FormaPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	forma, err := api.formaPagamentoService.Criar(&req)
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusCreated, forma)
}

// UpdateFormaPagamento substitui os dados de uma forma de pagamento existente
func (api *API) UpdateFormaPagamento(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	var req models.FormaPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	forma, err := api.formaPagamentoService.Atualizar(id, &req)
	if err != nil {
		api.responderErro(c, err, "Forma de pagamento")
		return
	}
	c.JSON(http.StatusOK, forma)
}

// DeleteFormaPagamento remove uma forma de pagamento definitivamente
func (api *API) DeleteFormaPagamento(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	deletado, err := api.formaPagamentoService.Deletar(id)
	api.responderDelete(c, deletado, err, "Forma de pagamento")
}
