package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/s3t20-labs/vendas-service/internal/models"
)

// ListClientes lista todos os clientes
func (api *API) ListClientes(c *gin.Context) {
	clientes, err := api.clienteService.ListarTodos()
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GetCliente busca um cliente pelo id
func (api *API) GetCliente(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	cliente, err := api.clienteService.BuscarPorID(id)
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// GetClientePorCodigo busca um cliente pelo código único
func (api *API) GetClientePorCodigo(c *gin.Context) {
	cliente, err := api.clienteService.BuscarPorCodigo(c.Param("codigo"))
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// GetClientesPorCidade lista os clientes de uma cidade
func (api *API) GetClientesPorCidade(c *gin.Context) {
	clientes, err := api.clienteService.BuscarPorCidade(c.Param("cidade"))
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GetClientesPorBairro lista os clientes de um bairro
func (api *API) GetClientesPorBairro(c *gin.Context) {
	clientes, err := api.clienteService.BuscarPorBairro(c.Param("bairro"))
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GetClientesPorTipo lista os clientes de um tipo
func (api *API) GetClientesPorTipo(c *gin.Context) {
	clientes, err := api.clienteService.BuscarPorTipo(c.Param("tipo"))
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// SearchClientes busca clientes por fragmento de nome, sem diferenciar
// maiúsculas
func (api *API) SearchClientes(c *gin.Context) {
	nome := c.Query("nome")
	if nome == "" {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Parâmetro obrigatório ausente", []models.ErrorDetail{
			{Field: "nome", Issue: "obrigatório"},
		}))
		return
	}

	clientes, err := api.clienteService.BuscarPorNome(nome)
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GetCidades lista as cidades distintas dos clientes
func (api *API) GetCidades(c *gin.Context) {
	cidades, err := api.clienteService.ListarCidades()
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, cidades)
}

// GetBairros lista os bairros distintos dos clientes
func (api *API) GetBairros(c *gin.Context) {
	bairros, err := api.clienteService.ListarBairros()
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, bairros)
}

// CountClientes retorna o total de clientes, opcionalmente filtrado por tipo
func (api *API) CountClientes(c *gin.Context) {
	var (
		total int64
		err   error
	)
	if tipo := c.Query("tipo"); tipo != "" {
		total, err = api.clienteService.ContarPorTipo(tipo)
	} else {
		total, err = api.clienteService.Contar()
	}
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// CreateCliente cadastra um novo cliente
func (api *API) CreateCliente(c *gin.Context) {
	var req models.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	cliente, err := api.clienteService.Criar(&req)
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

// UpdateCliente substitui os dados de um cliente existente
func (api *API) UpdateCliente(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	var req models.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	cliente, err := api.clienteService.Atualizar(id, &req)
	if err != nil {
		api.responderErro(c, err, "Cliente")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// DeleteCliente remove um cliente definitivamente
func (api *API) DeleteCliente(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	deletado, err := api.clienteService.Deletar(id)
	api.responderDelete(c, deletado, err, "Cliente")
}
