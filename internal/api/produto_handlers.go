package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/s3t20-labs/vendas-service/internal/models"
)

// ListProdutos lista todos os produtos
func (api *API) ListProdutos(c *gin.Context) {
	produtos, err := api.produtoService.ListarTodos()
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// GetProduto busca um produto pelo id
func (api *API) GetProduto(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	produto, err := api.produtoService.BuscarPorID(id)
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, produto)
}

// GetProdutoPorCodigo busca um produto pelo código único
func (api *API) GetProdutoPorCodigo(c *gin.Context) {
	produto, err := api.produtoService.BuscarPorCodigo(c.Param("codigo"))
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, produto)
}

// GetProdutosPorCategoria lista os produtos de uma categoria
func (api *API) GetProdutosPorCategoria(c *gin.Context) {
	produtos, err := api.produtoService.BuscarPorCategoria(c.Param("categoria"))
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// GetCategorias lista as categorias distintas dos produtos
func (api *API) GetCategorias(c *gin.Context) {
	categorias, err := api.produtoService.ListarCategorias()
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// CountProdutos retorna o total de produtos
func (api *API) CountProdutos(c *gin.Context) {
	total, err := api.produtoService.Contar()
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// CreateProduto cadastra um novo produto
func (api *API) CreateProduto(c *gin.Context) {
	var req models.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	produto, err := api.produtoService.Criar(&req)
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusCreated, produto)
}

// UpdateProduto substitui os dados de um produto existente
func (api *API) UpdateProduto(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	var req models.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.responderBindError(c, err)
		return
	}

	produto, err := api.produtoService.Atualizar(id, &req)
	if err != nil {
		api.responderErro(c, err, "Produto")
		return
	}
	c.JSON(http.StatusOK, produto)
}

// DeleteProduto remove um produto definitivamente
func (api *API) DeleteProduto(c *gin.Context) {
	id, ok := api.parseID(c, "id")
	if !ok {
		return
	}

	deletado, err := api.produtoService.Deletar(id)
	api.responderDelete(c, deletado, err, "Produto")
}
