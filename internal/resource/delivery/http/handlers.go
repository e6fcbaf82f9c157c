package http

import (
	"github.com/gin-gonic/gin"

	"resource-api/pkg/response"
)

// Create stores a new entity from the request body and answers 201.
func (h *Handler[E]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	entity, err := h.res.DecodeCreate(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	created, err := h.uc.Create(ctx, entity)
	if err != nil {
		h.l.Errorf(ctx, "%s.delivery.Create: %v", h.res.Name, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.present(created))
}

// List answers one page of entities.
func (h *Handler[E]) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	result, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "%s.delivery.List: %v", h.res.Name, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Paginated(c, presentPage(result, h.present))
}

// Detail answers one entity by id.
func (h *Handler[E]) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	entity, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.logUseCaseError(c, "Detail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.present(entity))
}

// Replace overwrites every writable field of an entity.
func (h *Handler[E]) Replace(c *gin.Context) {
	h.update(c, false)
}

// Patch overwrites only the fields present in the body.
func (h *Handler[E]) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *Handler[E]) update(c *gin.Context, partial bool) {
	ctx := c.Request.Context()

	patch, err := h.res.DecodeUpdate(c, partial)
	if err != nil {
		response.Error(c, h.mapBindError(err))
		return
	}

	updated, err := h.uc.Update(ctx, c.Param("id"), patch)
	if err != nil {
		h.logUseCaseError(c, "Update", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.present(updated))
}

// Delete removes an entity.
func (h *Handler[E]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.logUseCaseError(c, "Delete", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Deleted(c)
}
