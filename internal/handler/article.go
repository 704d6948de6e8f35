package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/apikit/internal/service"
)

type ArticleHandler struct {
	svc service.ArticleService
}

func NewArticleHandler(svc service.ArticleService) *ArticleHandler { return &ArticleHandler{svc: svc} }

func (h *ArticleHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/articles")
	{
		g.POST("", h.create)
		g.GET("/:article_id", h.getByID)
		g.GET("", h.list)
	}
}

type createArticleRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (h *ArticleHandler) create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c)
		return
	}
	article, err := h.svc.CreateArticle(c.Request.Context(), req.Title, req.Author, req.Body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, "article created", article)
}

func (h *ArticleHandler) getByID(c *gin.Context) {
	idStr := c.Param("article_id")
	id, _ := strconv.ParseInt(idStr, 10, 64)
	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "", article)
}

// list accepts page/page_size/order_by/order_dir query params. Conversion
// errors fall through as zero values and the paginator clamps them.
func (h *ArticleHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	params := service.ListParams{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  c.Query("order_by"),
		OrderDir: c.Query("order_dir"),
	}
	res, err := h.svc.ListArticles(c.Request.Context(), params)
	if err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "", res)
}
