package handlers

import (
	"github.com/gin-gonic/gin"

	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/domain/filter"
	"recyclehub/internal/infrastructure/http/v1/dto"
	"recyclehub/internal/store"
)

// SaleHandler serves /sales.
type SaleHandler struct {
	*ResourceHandler[sale.Sale, sale.Draft, sale.Patch, dto.SaleForm, dto.SalePatchForm]
	store *store.Store
}

// NewSaleHandler creates the sales handler.
func NewSaleHandler(base *BaseHandler, s *store.Store) *SaleHandler {
	return &SaleHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[sale.Sale, sale.Draft, sale.Patch, dto.SaleForm, dto.SalePatchForm]{
			Store:     s,
			Entity:    store.EntitySales,
			ID:        func(v sale.Sale) string { return v.ID },
			List:      s.Sales,
			Search:    filter.Sales,
			Add:       s.AddSale,
			Update:    s.UpdateSale,
			Delete:    s.DeleteSale,
			MapCreate: dto.SaleForm.ToDraft,
			MapUpdate: dto.SalePatchForm.ToPatch,
		}),
		store: s,
	}
}

// List handles GET /sales - records plus the backend metadata.
func (h *SaleHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	items, err := h.narrow(h.store.Sales(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.SalesResponse{
		ListResponse: dto.Page(items, q),
		Metadata:     h.store.SalesMetadata(),
	})
}
