package store

import (
	"context"

	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/infrastructure/api/resources"
)

func supplierID(v supplier.Supplier) string { return v.ID }
func clientID(v client.Client) string { return v.ID }
func pointID(v collectionpoint.CollectionPoint) string { return v.ID }
func productTypeID(v producttype.ProductType) string { return v.ID }
func collectionID(v collection.Collection) string { return v.ID }
func saleID(v sale.Sale) string { return v.ID }

// --- Suppliers ---

// RefreshSuppliers replaces the cached suppliers with the backend list.
func (s *Store) RefreshSuppliers(ctx context.Context) {
	_ = s.refresh(ctx, EntitySuppliers, s.loadSuppliers)
}

func (s *Store) loadSuppliers(ctx context.Context) error {
	list, err := s.suppliers.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.suppliers = list
	s.mu.Unlock()
	return nil
}

// AddSupplier creates a supplier and prepends the echoed record.
func (s *Store) AddSupplier(ctx context.Context, d supplier.Draft) (supplier.Supplier, error) {
	return mutate(ctx, s, EntitySuppliers, ActionCreate,
		func(ctx context.Context) (supplier.Supplier, error) { return s.suppliers.Create(ctx, d) },
		func(st *state, v supplier.Supplier) { st.suppliers = prepend(st.suppliers, v) })
}

// UpdateSupplier submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateSupplier(ctx context.Context, id string, p supplier.Patch) (supplier.Supplier, error) {
	return mutate(ctx, s, EntitySuppliers, ActionUpdate,
		func(ctx context.Context) (supplier.Supplier, error) { return s.suppliers.Update(ctx, id, p) },
		func(st *state, v supplier.Supplier) { st.suppliers = replace(st.suppliers, v, supplierID) })
}

// DeleteSupplier deletes a supplier and drops it from the cache.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntitySuppliers, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.suppliers.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.suppliers = remove(st.suppliers, id, supplierID) })
	return err
}

// --- Clients ---

// RefreshClients replaces the cached clients with the backend list.
func (s *Store) RefreshClients(ctx context.Context) {
	_ = s.refresh(ctx, EntityClients, s.loadClients)
}

func (s *Store) loadClients(ctx context.Context) error {
	list, err := s.clients.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.clients = list
	s.mu.Unlock()
	return nil
}

// AddClient creates a client and prepends the echoed record.
func (s *Store) AddClient(ctx context.Context, d client.Draft) (client.Client, error) {
	return mutate(ctx, s, EntityClients, ActionCreate,
		func(ctx context.Context) (client.Client, error) { return s.clients.Create(ctx, d) },
		func(st *state, v client.Client) { st.clients = prepend(st.clients, v) })
}

// UpdateClient submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateClient(ctx context.Context, id string, p client.Patch) (client.Client, error) {
	return mutate(ctx, s, EntityClients, ActionUpdate,
		func(ctx context.Context) (client.Client, error) { return s.clients.Update(ctx, id, p) },
		func(st *state, v client.Client) { st.clients = replace(st.clients, v, clientID) })
}

// DeleteClient deletes a client and drops it from the cache.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntityClients, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.clients.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.clients = remove(st.clients, id, clientID) })
	return err
}

// --- Collection points ---

// RefreshCollectionPoints replaces the cached collection points with the backend list.
func (s *Store) RefreshCollectionPoints(ctx context.Context) {
	_ = s.refresh(ctx, EntityCollectionPoints, s.loadCollectionPoints)
}

func (s *Store) loadCollectionPoints(ctx context.Context) error {
	list, err := s.collectionPoints.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.collectionPoints = list
	s.mu.Unlock()
	return nil
}

// AddCollectionPoint creates a collection point and prepends the echoed record.
func (s *Store) AddCollectionPoint(ctx context.Context, d collectionpoint.Draft) (collectionpoint.CollectionPoint, error) {
	return mutate(ctx, s, EntityCollectionPoints, ActionCreate,
		func(ctx context.Context) (collectionpoint.CollectionPoint, error) { return s.collectionPoints.Create(ctx, d) },
		func(st *state, v collectionpoint.CollectionPoint) {
			st.collectionPoints = prepend(st.collectionPoints, v)
		})
}

// UpdateCollectionPoint submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateCollectionPoint(ctx context.Context, id string, p collectionpoint.Patch) (collectionpoint.CollectionPoint, error) {
	return mutate(ctx, s, EntityCollectionPoints, ActionUpdate,
		func(ctx context.Context) (collectionpoint.CollectionPoint, error) {
			return s.collectionPoints.Update(ctx, id, p)
		},
		func(st *state, v collectionpoint.CollectionPoint) {
			st.collectionPoints = replace(st.collectionPoints, v, pointID)
		})
}

// DeleteCollectionPoint deletes a collection point and drops it from the cache.
func (s *Store) DeleteCollectionPoint(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntityCollectionPoints, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.collectionPoints.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.collectionPoints = remove(st.collectionPoints, id, pointID) })
	return err
}

// --- Product types ---

// RefreshProductTypes replaces the cached product types with the backend list.
func (s *Store) RefreshProductTypes(ctx context.Context) {
	_ = s.refresh(ctx, EntityProductTypes, s.loadProductTypes)
}

func (s *Store) loadProductTypes(ctx context.Context) error {
	list, err := s.productTypes.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.productTypes = list
	s.mu.Unlock()
	return nil
}

// AddProductType creates a product type and prepends the echoed record.
func (s *Store) AddProductType(ctx context.Context, d producttype.Draft) (producttype.ProductType, error) {
	return mutate(ctx, s, EntityProductTypes, ActionCreate,
		func(ctx context.Context) (producttype.ProductType, error) { return s.productTypes.Create(ctx, d) },
		func(st *state, v producttype.ProductType) { st.productTypes = prepend(st.productTypes, v) })
}

// UpdateProductType submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateProductType(ctx context.Context, id string, p producttype.Patch) (producttype.ProductType, error) {
	return mutate(ctx, s, EntityProductTypes, ActionUpdate,
		func(ctx context.Context) (producttype.ProductType, error) { return s.productTypes.Update(ctx, id, p) },
		func(st *state, v producttype.ProductType) { st.productTypes = replace(st.productTypes, v, productTypeID) })
}

// DeleteProductType deletes a product type and drops it from the cache.
func (s *Store) DeleteProductType(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntityProductTypes, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.productTypes.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.productTypes = remove(st.productTypes, id, productTypeID) })
	return err
}

// --- Collections ---

// RefreshCollections replaces the cached collections with the backend list.
func (s *Store) RefreshCollections(ctx context.Context) {
	_ = s.refresh(ctx, EntityCollections, s.loadCollections)
}

func (s *Store) loadCollections(ctx context.Context) error {
	list, err := s.collections.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.collections = list
	s.mu.Unlock()
	return nil
}

// AddCollection creates a collection and prepends the echoed record.
func (s *Store) AddCollection(ctx context.Context, d collection.Draft) (collection.Collection, error) {
	c, err := mutate(ctx, s, EntityCollections, ActionCreate,
		func(ctx context.Context) (collection.Collection, error) { return s.collections.Create(ctx, d) },
		func(st *state, v collection.Collection) { st.collections = prepend(st.collections, v) })
	return s.withSupplierType(c), err
}

// UpdateCollection submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateCollection(ctx context.Context, id string, p collection.Patch) (collection.Collection, error) {
	c, err := mutate(ctx, s, EntityCollections, ActionUpdate,
		func(ctx context.Context) (collection.Collection, error) { return s.collections.Update(ctx, id, p) },
		func(st *state, v collection.Collection) { st.collections = replace(st.collections, v, collectionID) })
	return s.withSupplierType(c), err
}

// UpdateCollectionStatus transmits only the status and replaces the cached record.
func (s *Store) UpdateCollectionStatus(ctx context.Context, id string, status collection.Status) (collection.Collection, error) {
	c, err := mutate(ctx, s, EntityCollections, ActionUpdateStatus,
		func(ctx context.Context) (collection.Collection, error) {
			return s.collections.UpdateStatus(ctx, id, status)
		},
		func(st *state, v collection.Collection) { st.collections = replace(st.collections, v, collectionID) })
	return s.withSupplierType(c), err
}

// DeleteCollection deletes a collection and drops it from the cache.
func (s *Store) DeleteCollection(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntityCollections, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.collections.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.collections = remove(st.collections, id, collectionID) })
	return err
}

// CollectionsByDate fetches one day straight from the backend; the cache is not touched.
func (s *Store) CollectionsByDate(ctx context.Context, date string) (collection.Day, error) {
	day, err := s.collections.ListByDate(ctx, date)
	if err != nil {
		s.fail(ctx, EntityCollections, ActionLoad, err)
		return collection.Day{}, err
	}

	s.mu.RLock()
	lookup := s.categoriesLocked()
	s.mu.RUnlock()
	for i := range day.Collections {
		day.Collections[i] = resources.ResolveSupplierType(day.Collections[i], lookup)
	}
	return day, nil
}

func (s *Store) withSupplierType(c collection.Collection) collection.Collection {
	if c.ID == "" {
		return c
	}
	s.mu.RLock()
	lookup := s.categoriesLocked()
	s.mu.RUnlock()
	return resources.ResolveSupplierType(c, lookup)
}

// --- Sales ---

// RefreshSales replaces the cached sales and their backend totals.
func (s *Store) RefreshSales(ctx context.Context) {
	_ = s.refresh(ctx, EntitySales, s.loadSales)
}

func (s *Store) loadSales(ctx context.Context) error {
	list, meta, err := s.sales.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.sales = list
	s.state.salesMeta = meta
	s.mu.Unlock()
	return nil
}

// AddSale creates a sale and prepends the echoed record.
func (s *Store) AddSale(ctx context.Context, d sale.Draft) (sale.Sale, error) {
	return mutate(ctx, s, EntitySales, ActionCreate,
		func(ctx context.Context) (sale.Sale, error) { return s.sales.Create(ctx, d) },
		func(st *state, v sale.Sale) { st.sales = prepend(st.sales, v) })
}

// UpdateSale submits p and replaces the cached record with the echoed one.
func (s *Store) UpdateSale(ctx context.Context, id string, p sale.Patch) (sale.Sale, error) {
	return mutate(ctx, s, EntitySales, ActionUpdate,
		func(ctx context.Context) (sale.Sale, error) { return s.sales.Update(ctx, id, p) },
		func(st *state, v sale.Sale) { st.sales = replace(st.sales, v, saleID) })
}

// DeleteSale deletes a sale and drops it from the cache.
func (s *Store) DeleteSale(ctx context.Context, id string) error {
	id = canonicalID(id)
	_, err := mutate(ctx, s, EntitySales, ActionDelete,
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.sales.Delete(ctx, id) },
		func(st *state, _ struct{}) { st.sales = remove(st.sales, id, saleID) })
	return err
}
