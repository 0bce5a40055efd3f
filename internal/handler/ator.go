package handler

import (
	"net/http"

	"github.com/miguelamaral254/api-cognivox-test/internal/dto"
	"github.com/miguelamaral254/api-cognivox-test/internal/service"

	"github.com/gin-gonic/gin"
)

type AtorHandler struct{ svc service.AtorService }

func NewAtorHandler(svc service.AtorService) *AtorHandler { return &AtorHandler{svc: svc} }

// Listar godoc
// @Summary Lista todos os atores
// @Tags ator
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ator
// @Router /v1/ator [get]
func (h *AtorHandler) Listar(c *gin.Context) {
	atores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, atores)
}

// Criar godoc
// @Summary Cria um ator com conta de acesso e, opcionalmente, responsável vinculado
// @Tags ator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarAtorRequest true "Dados do ator"
// @Success 201 {string} string "Ator criado com sucesso!"
// @Failure 409 {object} apierror.APIError
// @Router /v1/ator [post]
func (h *AtorHandler) Criar(c *gin.Context) {
	var req dto.CriarAtorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Criar(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, "Ator criado com sucesso!")
}

func (h *AtorHandler) BuscarPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ator, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ator)
}

// Atualizar godoc
// @Summary Atualiza um ator e propaga os dados para as contas de acesso
// @Tags ator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do ator"
// @Param body body dto.AtualizarAtorRequest true "Dados do ator"
// @Success 200 {object} model.Ator
// @Router /v1/ator/{id} [put]
func (h *AtorHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarAtorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ator, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ator)
}

func (h *AtorHandler) AtualizarPerfil(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PerfilAtorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ator, err := h.svc.AtualizarPerfil(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ator)
}

// Excluir marks the actor as inactive; nothing is physically removed.
func (h *AtorHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro apagado com sucesso!"})
}

// ── Listagens ────────────────────────────────────────────────────────────────

func (h *AtorHandler) ContarAlunos(c *gin.Context) {
	total, err := h.svc.ContarAlunos(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *AtorHandler) Descricoes(c *gin.Context) {
	rows, err := h.svc.Descricoes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) ComboNomes(c *gin.Context) {
	nomes, err := h.svc.ComboNomes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nomes)
}

func (h *AtorHandler) ComboTodos(c *gin.Context) {
	rows, err := h.svc.ComboTodos(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) PorUnidade(c *gin.Context) {
	id, ok := pathID(c, "unidade_id")
	if !ok {
		return
	}
	rows, err := h.svc.PorUnidade(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) AlunosPorUnidade(c *gin.Context) {
	id, ok := pathID(c, "unidade_id")
	if !ok {
		return
	}
	rows, err := h.svc.AlunosPorUnidade(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) AlunosDI(c *gin.Context) {
	atores, err := h.svc.AlunosDI(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, atores)
}

func (h *AtorHandler) Psicologos(c *gin.Context) {
	atores, err := h.svc.Psicologos(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, atores)
}

func (h *AtorHandler) Professores(c *gin.Context) {
	atores, err := h.svc.Professores(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, atores)
}

func (h *AtorHandler) Responsaveis(c *gin.Context) {
	atores, err := h.svc.Responsaveis(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, atores)
}

func (h *AtorHandler) Interacionais(c *gin.Context) {
	rows, err := h.svc.Interacionais(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) PsicologosPorCidade(c *gin.Context) {
	rows, err := h.svc.PsicologosPorCidade(c.Request.Context(), c.Query("cidade"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AtorHandler) ChatPorInstituicao(c *gin.Context) {
	id, ok := pathID(c, "unidade_id")
	if !ok {
		return
	}
	rows, err := h.svc.ChatPorInstituicao(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ── Projeções por ator ───────────────────────────────────────────────────────

func (h *AtorHandler) Nome(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	nome, err := h.svc.Nome(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nome": nome})
}

func (h *AtorHandler) AnoSessao(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ano, err := h.svc.AnoSessao(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ano_sessao": ano})
}

func (h *AtorHandler) Foto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	foto, err := h.svc.FotoHex(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hexadecimal_foto": foto})
}

func (h *AtorHandler) EmailBruto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	email, err := h.svc.EmailBruto(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

func (h *AtorHandler) NomeEImagem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.NomeEImagem(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) PorEmail(c *gin.Context) {
	ator, err := h.svc.BuscarPorEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AtorPorEmailResponse{
		ID:    ator.ID,
		Nome:  ator.Nome,
		Email: ator.Email,
	})
}

func (h *AtorHandler) Tipo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Tipo(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) DadosMensageria(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DadosMensageria(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) DadosCompletos(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DadosCompletos(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) DadosPesquisa(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DadosPesquisa(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) DadosPesquisaApp(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DadosPesquisaApp(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) AlunoPorResponsavel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.AlunoPorResponsavel(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) Autorizado(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	nome, err := h.svc.Autorizado(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nome": nome})
}

func (h *AtorHandler) ItensModuloUsuario(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ItensModuloUsuario(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtorHandler) ItensModuloVazio(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ItensModuloVazio())
}

// ── Grades ───────────────────────────────────────────────────────────────────

func (h *AtorHandler) CadernoAtividades(c *gin.Context) {
	var f dto.AtorFilter
	_ = c.ShouldBindQuery(&f)
	itens, err := h.svc.CadernoAtividades(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, itens)
}

func (h *AtorHandler) GridFiltro(c *gin.Context) {
	var f dto.AtorFilter
	_ = c.ShouldBindQuery(&f)
	itens, err := h.svc.GridFiltro(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, itens)
}

func (h *AtorHandler) Grid(c *gin.Context) {
	itens, err := h.svc.Grid(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, itens)
}
