package apitest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/infrastructure/api/dto"
)

var (
	supplierTypes = map[string]bool{dto.SupplierTypeCollector: true, dto.SupplierTypeAgent: true, dto.SupplierTypeCompany: true}
	statuses      = map[string]bool{dto.StatusScheduled: true, dto.StatusConfirmed: true, dto.StatusCollected: true}
	units         = map[string]bool{"g": true, "kg": true}
)

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// --- Suppliers ---

func (b *Backend) createSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bind(c, &req) {
		return
	}
	if !supplierTypes[req.SupplierType] {
		errorJSON(c, http.StatusBadRequest, "Invalid supplier type")
		return
	}
	c.JSON(http.StatusCreated, b.SeedSupplier(dto.Supplier{
		Name: req.Name, TaxID: req.TaxID, Phone: req.Phone, Email: req.Email,
		Address: req.Address, SupplierType: req.SupplierType, MaterialType: req.MaterialType,
	}))
}

func (b *Backend) updateSupplier(c *gin.Context, id int64) {
	var req dto.UpdateSupplierRequest
	if !bind(c, &req) {
		return
	}
	if req.SupplierType != nil && !supplierTypes[*req.SupplierType] {
		errorJSON(c, http.StatusBadRequest, "Invalid supplier type")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.suppliers.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Supplier not found")
		return
	}
	set(&s.Name, req.Name)
	set(&s.TaxID, req.TaxID)
	set(&s.Phone, req.Phone)
	set(&s.Email, req.Email)
	set(&s.Address, req.Address)
	set(&s.SupplierType, req.SupplierType)
	set(&s.MaterialType, req.MaterialType)
	s.UpdatedAt = b.now().Format(time.RFC3339Nano)
	b.suppliers.put(s)

	// Nested references follow the renamed supplier.
	for _, col := range b.collections.all() {
		if col.SupplierID == id {
			b.collections.put(b.withCollectionRefs(col))
		}
	}
	c.JSON(http.StatusOK, s)
}

// --- Clients ---

func (b *Backend) createClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, b.SeedClient(dto.Client{
		Name: req.Name, TaxID: req.TaxID, Phone: req.Phone, Email: req.Email, Address: req.Address,
	}))
}

func (b *Backend) updateClient(c *gin.Context, id int64) {
	var req dto.UpdateClientRequest
	if !bind(c, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	cl, ok := b.clients.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Client not found")
		return
	}
	set(&cl.Name, req.Name)
	set(&cl.TaxID, req.TaxID)
	set(&cl.Phone, req.Phone)
	set(&cl.Email, req.Email)
	set(&cl.Address, req.Address)
	cl.UpdatedAt = b.now().Format(time.RFC3339Nano)
	b.clients.put(cl)
	c.JSON(http.StatusOK, cl)
}

// --- Collection points ---

func (b *Backend) createCollectionPoint(c *gin.Context) {
	var req dto.CreateCollectionPointRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, b.SeedCollectionPoint(dto.CollectionPoint{
		Name: req.Name, Responsible: req.Responsible, Address: req.Address, Phone: req.Phone, Email: req.Email,
	}))
}

func (b *Backend) updateCollectionPoint(c *gin.Context, id int64) {
	var req dto.UpdateCollectionPointRequest
	if !bind(c, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.collectionPoints.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Collection point not found")
		return
	}
	set(&p.Name, req.Name)
	set(&p.Responsible, req.Responsible)
	set(&p.Address, req.Address)
	set(&p.Phone, req.Phone)
	set(&p.Email, req.Email)
	p.UpdatedAt = b.now().Format(time.RFC3339Nano)
	b.collectionPoints.put(p)
	c.JSON(http.StatusOK, p)
}

// --- Product types ---

func (b *Backend) createProductType(c *gin.Context) {
	var req dto.CreateProductTypeRequest
	if !bind(c, &req) {
		return
	}
	if !units[req.Unit] {
		errorJSON(c, http.StatusBadRequest, "Invalid unit")
		return
	}
	c.JSON(http.StatusCreated, b.SeedProductType(dto.ProductType{
		Name: req.Name, Description: req.Description, Unit: req.Unit,
	}))
}

func (b *Backend) updateProductType(c *gin.Context, id int64) {
	var req dto.UpdateProductTypeRequest
	if !bind(c, &req) {
		return
	}
	if req.Unit != nil && !units[*req.Unit] {
		errorJSON(c, http.StatusBadRequest, "Invalid unit")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.productTypes.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Product type not found")
		return
	}
	set(&p.Name, req.Name)
	set(&p.Description, req.Description)
	set(&p.Unit, req.Unit)
	p.UpdatedAt = b.now().Format(time.RFC3339Nano)
	b.productTypes.put(p)
	c.JSON(http.StatusOK, p)
}

// --- Collections ---

func (b *Backend) withCollectionRefs(col dto.Collection) dto.Collection {
	col.Supplier, col.Product = nil, nil
	if s, ok := b.suppliers.get(col.SupplierID); ok {
		col.Supplier = &dto.Ref{ID: s.ID, Name: s.Name, Email: s.Email}
	}
	if p, ok := b.productTypes.get(col.ProductID); ok {
		col.Product = &dto.Ref{ID: p.ID, Name: p.Name, Unit: p.Unit}
	}
	return col
}

func (b *Backend) createCollection(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if !bind(c, &req) {
		return
	}
	if !statuses[req.Status] {
		errorJSON(c, http.StatusBadRequest, "Invalid status")
		return
	}

	b.mu.Lock()
	_, supplierOK := b.suppliers.get(req.SupplierID)
	_, productOK := b.productTypes.get(req.ProductID)
	b.mu.Unlock()
	if !supplierOK || !productOK {
		errorJSON(c, http.StatusBadRequest, "Supplier or product not found")
		return
	}

	c.JSON(http.StatusCreated, b.SeedCollection(dto.Collection{
		SupplierID: req.SupplierID, Status: req.Status, DateTime: req.DateTime, Location: req.Location,
		ProductID: req.ProductID, Weight: req.Weight, Value: req.Value,
	}))
}

func (b *Backend) updateCollection(c *gin.Context, id int64) {
	var req dto.UpdateCollectionRequest
	if !bind(c, &req) {
		return
	}
	if req.Status != nil && !statuses[*req.Status] {
		errorJSON(c, http.StatusBadRequest, "Invalid status")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	col, ok := b.collections.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Collection not found")
		return
	}
	set(&col.SupplierID, req.SupplierID)
	set(&col.Status, req.Status)
	set(&col.DateTime, req.DateTime)
	set(&col.Location, req.Location)
	set(&col.ProductID, req.ProductID)
	set(&col.Weight, req.Weight)
	set(&col.Value, req.Value)
	col.UpdatedAt = b.now().Format(time.RFC3339Nano)
	col = b.withCollectionRefs(col)
	b.collections.put(col)
	c.JSON(http.StatusOK, col)
}

func (b *Backend) updateCollectionStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateCollectionStatusRequest
	if !bind(c, &req) {
		return
	}
	if !statuses[req.Status] {
		errorJSON(c, http.StatusBadRequest, "Invalid status")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	col, found := b.collections.get(id)
	if !found {
		errorJSON(c, http.StatusNotFound, "Collection not found")
		return
	}
	col.Status = req.Status
	col.UpdatedAt = b.now().Format(time.RFC3339Nano)
	b.collections.put(col)
	c.JSON(http.StatusOK, col)
}

func (b *Backend) collectionsByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid date")
		return
	}

	b.mu.Lock()
	rows := b.collections.all()
	b.mu.Unlock()

	resp := dto.CollectionsByDate{
		Date:        date,
		Collections: []dto.Collection{},
		Summary: dto.CollectionsSummary{
			ByStatus: map[string]int{dto.StatusScheduled: 0, dto.StatusConfirmed: 0, dto.StatusCollected: 0},
		},
	}
	for _, col := range rows {
		day, err := dto.DateOf(col.DateTime)
		if err != nil || day != date {
			continue
		}
		resp.Collections = append(resp.Collections, col)
		resp.Summary.TotalCollections++
		resp.Summary.TotalWeight = sumAmounts(resp.Summary.TotalWeight, col.Weight)
		resp.Summary.TotalValue = sumAmounts(resp.Summary.TotalValue, col.Value)
		resp.Summary.ByStatus[col.Status]++
	}
	c.JSON(http.StatusOK, resp)
}

// --- Sales ---

func (b *Backend) withSaleRefs(s dto.Sale) dto.Sale {
	s.Client, s.Product = nil, nil
	if cl, ok := b.clients.get(s.ClientID); ok {
		s.Client = &dto.Ref{ID: cl.ID, Name: cl.Name, Email: cl.Email}
	}
	if p, ok := b.productTypes.get(s.ProductID); ok {
		s.Product = &dto.Ref{ID: p.ID, Name: p.Name, Unit: p.Unit}
	}
	return s
}

func (b *Backend) listSales(c *gin.Context) {
	b.mu.Lock()
	rows := b.sales.all()
	b.mu.Unlock()

	resp := dto.SalesWithMetadata{Sales: rows}
	resp.Metadata.TotalSales = len(rows)
	for _, s := range rows {
		resp.Metadata.TotalWeight = sumAmounts(resp.Metadata.TotalWeight, s.Weight)
		resp.Metadata.TotalValue = sumAmounts(resp.Metadata.TotalValue, s.Value)
	}
	c.JSON(http.StatusOK, resp)
}

func (b *Backend) createSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bind(c, &req) {
		return
	}

	b.mu.Lock()
	_, clientOK := b.clients.get(req.ClientID)
	_, productOK := b.productTypes.get(req.ProductID)
	b.mu.Unlock()
	if !clientOK || !productOK {
		errorJSON(c, http.StatusBadRequest, "Client or product not found")
		return
	}

	c.JSON(http.StatusCreated, b.SeedSale(dto.Sale{
		ClientID: req.ClientID, ProductID: req.ProductID, DateTime: req.DateTime,
		Weight: req.Weight, Value: req.Value,
	}))
}

func (b *Backend) updateSale(c *gin.Context, id int64) {
	var req dto.UpdateSaleRequest
	if !bind(c, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sales.get(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Sale not found")
		return
	}
	set(&s.ClientID, req.ClientID)
	set(&s.ProductID, req.ProductID)
	set(&s.DateTime, req.DateTime)
	set(&s.Weight, req.Weight)
	set(&s.Value, req.Value)
	s.UpdatedAt = b.now().Format(time.RFC3339Nano)
	s = b.withSaleRefs(s)
	b.sales.put(s)
	c.JSON(http.StatusOK, s)
}
