package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recetario-api/internal/application"
	"github.com/oksasatya/recetario-api/internal/interface/middleware"
	"github.com/oksasatya/recetario-api/pkg/response"
)

const multipartOverhead = 1 << 20

type RecipeHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *application.RecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(key + " must be an integer")
	}
	return &n, nil
}

// Search handles GET /recetas/buscar?ingrediente=&nivel=&maxTiempo=&usuarioId=
func (h *RecipeHandler) Search(c *gin.Context) {
	maxTime, err := queryInt(c, "maxTiempo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query", map[string]string{"maxTiempo": "must be an integer"})
		return
	}
	list, err := h.Svc.Search(c.Request.Context(), application.SearchParams{
		Ingredient: c.Query("ingrediente"),
		Level:      c.Query("nivel"),
		MaxTime:    maxTime,
		UserID:     c.Query("usuarioId"),
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toExpandedList(list))
}

// FullText handles GET /recetas/texto?q=&size=
func (h *RecipeHandler) FullText(c *gin.Context) {
	size, err := queryInt(c, "size")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query", map[string]string{"size": "must be an integer"})
		return
	}
	n := 0
	if size != nil {
		n = *size
	}
	list, err := h.Svc.FullText(c.Request.Context(), c.Query("q"), n)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toExpandedList(list))
}

func (h *RecipeHandler) List(c *gin.Context) {
	list, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toExpandedList(list))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	r, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toExpandedResponse(r))
}

func (h *RecipeHandler) ListByAuthor(c *gin.Context) {
	list, err := h.Svc.ListByAuthor(c.Request.Context(), c.Param("usuarioId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toRecipeList(list))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.RecipeInput{
		Title:           req.Title,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		PreparationTime: req.PreparationTime,
		DifficultyLevel: req.DifficultyLevel,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, toRecipeResponse(r))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), application.RecipePatch{
		Title:           req.Title,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		PreparationTime: req.PreparationTime,
		DifficultyLevel: req.DifficultyLevel,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toRecipeResponse(r))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "recipe deleted")
}

// UploadImage handles POST /recetas/imagen/:id with a multipart "imagen" file.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxImageBytes+multipartOverhead)
	fh, err := c.FormFile("imagen")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"imagen": "is required and must be at most 5 MiB"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	r, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), middleware.UserID(c),
		fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, toRecipeResponse(r))
}
