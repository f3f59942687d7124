package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/s3t20-labs/vendas-service/internal/models"
)

// ListVendas lista todas as vendas
func (api *API) ListVendas(c *gin.Context) {
	vendas, err := api.vendaService.ListarTodos()
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVenda busca uma venda pelo id
func (api *API) GetVenda(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	venda, err := api.vendaService.BuscarPorID(id)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, venda)
}

// GetVendaPorCodigo busca uma venda pelo código único
func (api *API) GetVendaPorCodigo(c *gin.Context) {
	venda, err := api.vendaService.BuscarPorCodigo(c.Param("codigo"))
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, venda)
}

// GetVendasPorData lista as vendas de uma data
func (api *API) GetVendasPorData(c *gin.Context) {
	data, ok := api.parseData(c, c.Param("data"), "data")
	if !ok {
		return
	}

	vendas, err := api.vendaService.BuscarPorData(data)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorPeriodo lista as vendas de um período, inclusivo nas duas pontas
func (api *API) GetVendasPorPeriodo(c *gin.Context) {
	dataInicio, dataFim, ok := api.parsePeriodo(c)
	if !ok {
		return
	}

	vendas, err := api.vendaService.BuscarPorPeriodo(dataInicio, dataFim)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorCliente lista as vendas de um cliente
func (api *API) GetVendasPorCliente(c *gin.Context) {
	clienteID, ok := api.parseID(c, "clienteId")
	if !ok {
		return
	}

	vendas, err := api.vendaService.BuscarPorCliente(clienteID)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorProduto lista as vendas de um produto
func (api *API) GetVendasPorProduto(c *gin.Context) {
	produtoID, ok := api.parseID(c, "produtoId")
	if !ok {
		return
	}

	vendas, err := api.vendaService.BuscarPorProduto(produtoID)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorFormaPagamento lista as vendas de uma forma de pagamento
func (api *API) GetVendasPorFormaPagamento(c *gin.Context) {
	formaPagamentoID, ok := api.parseID(c, "formaPagamentoId")
	if !ok {
		return
	}

	vendas, err := api.vendaService.BuscarPorFormaPagamento(formaPagamentoID)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorCidadeCliente lista as vendas de clientes de uma cidade
func (api *API) GetVendasPorCidadeCliente(c *gin.Context) {
	vendas, err := api.vendaService.BuscarPorCidadeCliente(c.Param("cidade"))
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetVendasPorCategoriaProduto lista as vendas de produtos de uma categoria
func (api *API) GetVendasPorCategoriaProduto(c *gin.Context) {
	vendas, err := api.vendaService.BuscarPorCategoriaProduto(c.Param("categoria"))
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// GetResumoVendas retorna a contagem e a receita acumulada de todas as vendas
func (api *API) GetResumoVendas(c *gin.Context) {
	resumo, err := api.vendaService.ObterResumo()
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, resumo)
}

// GetResumoVendasPorPeriodo retorna a contagem e a receita acumulada das
// vendas de um período
func (api *API) GetResumoVendasPorPeriodo(c *gin.Context) {
	dataInicio, dataFim, ok := api.parsePeriodo(c)
	if !ok {
		return
	}

	resumo, err := api.vendaService.ObterResumoPorPeriodo(dataInicio, dataFim)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, resumo)
}

// CountVendas retorna o total de vendas
func (api *API) CountVendas(c *gin.Context) {
	total, err := api.vendaService.Contar()
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// CreateVenda registra uma nova venda
func (api *API) CreateVenda(c *gin.Context) {
	var req models.VendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}
	if !api.validarValoresVenda(c, &req) {
		return
	}

	venda, err := api.vendaService.Criar(&req)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusCreated, venda)
}

// UpdateVenda substitui os campos escalares de uma venda existente
func (api *API) UpdateVenda(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	var req models.VendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}
	if !api.validarValoresVenda(c, &req) {
		return
	}

	venda, err := api.vendaService.Atualizar(id, &req)
	if err != nil {
		api.responderErro(c, err, "Venda")
		return
	}
	c.JSON(http.StatusOK, venda)
}

// DeleteVenda remove uma venda definitivamente
func (api *API) DeleteVenda(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	deletado, err := api.vendaService.Deletar(id)
	api.responderDelete(c, deletado, err, "Venda")
}

// validarValoresVenda valida os campos monetários, que as binding tags não
// cobrem para decimal.Decimal: preço unitário positivo, receita não-negativa
// quando fornecida.
func (api *API) validarValoresVenda(c *gin.Context, req *models.VendaRequest) bool {
	if !req.PrecoUnitario.IsPositive() {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Requisição inválida", []models.ErrorDetail{
			{Field: "preco_unitario", Issue: "deve ser maior que zero"},
		}))
		return false
	}
	if req.ReceitaTotal != nil && req.ReceitaTotal.IsNegative() {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Requisição inválida", []models.ErrorDetail{
			{Field: "receita_total", Issue: "não pode ser negativa"},
		}))
		return false
	}
	return true
}

// parseData interpreta uma data 2006-01-02. Responde 400 e retorna false
// quando o valor é inválido.
func (api *API) parseData(c *gin.Context, valor, campo string) (models.Data, bool) {
	data, err := models.ParseData(valor)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Data inválida", []models.ErrorDetail{
			{Field: campo, Issue: "formato esperado: " + models.FormatoData},
		}))
		return models.Data{}, false
	}
	return data, true
}

// parsePeriodo interpreta os query params dataInicio e dataFim
func (api *API) parsePeriodo(c *gin.Context) (models.Data, models.Data, bool) {
	dataInicio, ok := api.parseData(c, c.Query("dataInicio"), "dataInicio")
	if !ok {
		return models.Data{}, models.Data{}, false
	}
	dataFim, ok := api.parseData(c, c.Query("dataFim"), "dataFim")
	if !ok {
		return models.Data{}, models.Data{}, false
	}
	return dataInicio, dataFim, true
}
