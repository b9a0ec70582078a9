// Package store is the in-memory cache of every backend entity and the
// actions that keep it in sync with the backend.
//
// A Store is constructed once and shared by reference. Each entity has its
// own ordered records and loading flag; reads return copies. The cache is
// patched only after the backend has answered, with the record it echoed.
package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/dto"
	"recyclehub/internal/infrastructure/api/resources"
	"recyclehub/internal/notify"
	"recyclehub/pkg/logger"
)

// Notifier receives user-facing notifications for every action outcome.
type Notifier interface {
	Notify(ctx context.Context, n notify.Notification)
}

// Config configures a Store.
type Config struct {
	API      api.Requester
	Notifier Notifier       // optional
	Logger   *logger.Logger // optional
}

// EntityStatus describes the load state of one entity.
type EntityStatus struct {
	Loading  bool       `json:"loading"`
	Loaded   bool       `json:"loaded"`
	LastErr  string     `json:"lastError,omitempty"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"` // nil until the first successful load

	// Err is the last load failure, nil after a successful load.
	Err error `json:"-"`
}

// Store holds the cached records of all six entities.
type Store struct {
	suppliers        *resources.Suppliers
	clients          *resources.Clients
	collectionPoints *resources.CollectionPoints
	productTypes     *resources.ProductTypes
	collections      *resources.Collections
	sales            *resources.Sales

	notifier Notifier
	log      *logger.Logger
	flights  singleflight.Group

	mu    sync.RWMutex
	state state
}

type state struct {
	suppliers        []supplier.Supplier
	clients          []client.Client
	collectionPoints []collectionpoint.CollectionPoint
	productTypes     []producttype.ProductType
	collections      []collection.Collection
	sales            []sale.Sale
	salesMeta        sale.Metadata

	status map[Entity]EntityStatus
}

type discard struct{}

func (discard) Notify(context.Context, notify.Notification) {}

// New creates an empty store. Nothing is loaded until Init or a Refresh call.
func New(cfg Config) *Store {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	var n Notifier = discard{}
	if cfg.Notifier != nil {
		n = cfg.Notifier
	}

	s := &Store{
		suppliers:        resources.NewSuppliers(cfg.API),
		clients:          resources.NewClients(cfg.API),
		collectionPoints: resources.NewCollectionPoints(cfg.API),
		productTypes:     resources.NewProductTypes(cfg.API),
		collections:      resources.NewCollections(cfg.API),
		sales:            resources.NewSales(cfg.API),
		notifier:         n,
		log:              log.WithComponent("store"),
	}
	s.state.status = make(map[Entity]EntityStatus, len(Entities()))
	for _, e := range Entities() {
		s.state.status[e] = EntityStatus{}
	}
	return s
}

// Init loads every entity concurrently and waits for all of them.
// A failing load is reported and never cancels the others.
func (s *Store) Init(ctx context.Context) {
	var g errgroup.Group
	for _, e := range Entities() {
		g.Go(func() error {
			s.Refresh(ctx, e)
			return nil
		})
	}
	_ = g.Wait()
}

// Refresh reloads one entity. Unknown entities are ignored.
func (s *Store) Refresh(ctx context.Context, e Entity) {
	_ = s.Reload(ctx, e)
}

// Reload is Refresh for callers that need the outcome: it returns the error of
// the load it ran or joined. Failures are still reported through the notifier.
func (s *Store) Reload(ctx context.Context, e Entity) error {
	load := s.loader(e)
	if load == nil {
		return apperror.NewValidation("unknown entity: " + string(e))
	}
	return s.refresh(ctx, e, load)
}

func (s *Store) loader(e Entity) func(context.Context) error {
	switch e {
	case EntitySuppliers:
		return s.loadSuppliers
	case EntityClients:
		return s.loadClients
	case EntityCollectionPoints:
		return s.loadCollectionPoints
	case EntityProductTypes:
		return s.loadProductTypes
	case EntityCollections:
		return s.loadCollections
	case EntitySales:
		return s.loadSales
	}
	return nil
}

// refresh runs load under the entity's loading flag. Concurrent refreshes of
// the same entity join the one in flight and share its error.
func (s *Store) refresh(ctx context.Context, e Entity, load func(ctx context.Context) error) error {
	_, err, _ := s.flights.Do(string(e), func() (any, error) {
		s.setLoading(e, true)

		err := load(ctx)

		s.mu.Lock()
		st := s.state.status[e]
		st.Loading = false
		if err != nil {
			st.LastErr, st.Err = err.Error(), err
		} else {
			now := time.Now()
			st.Loaded, st.LastErr, st.Err, st.LoadedAt = true, "", nil, &now
		}
		s.state.status[e] = st
		s.mu.Unlock()

		if err != nil {
			s.fail(ctx, e, ActionLoad, err)
		}
		return nil, err
	})
	return err
}

func (s *Store) setLoading(e Entity, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state.status[e]
	st.Loading = loading
	s.state.status[e] = st
}

// fail reports a failed action.
func (s *Store) fail(ctx context.Context, e Entity, a Action, err error) {
	s.log.WithContext(ctx).
		WithAction(string(e), string(a)).
		WithError(err).
		Errorw("store action failed")
	s.notifier.Notify(ctx, notify.Notification{
		Level:   notify.LevelError,
		Message: ErrorMessage(e, a, err),
		Entity:  string(e),
		Action:  string(a),
	})
}

// succeed reports a completed mutation.
func (s *Store) succeed(ctx context.Context, e Entity, a Action) {
	s.notifier.Notify(ctx, notify.Notification{
		Level:   notify.LevelSuccess,
		Message: SuccessMessage(e, a),
		Entity:  string(e),
		Action:  string(a),
	})
}

// mutate runs call and, only when it succeeds, applies its result to the
// cache under the write lock. The error is returned unchanged.
func mutate[U any](ctx context.Context, s *Store, e Entity, a Action, call func(context.Context) (U, error), apply func(*state, U)) (U, error) {
	u, err := call(ctx)
	if err != nil {
		s.fail(ctx, e, a, err)
		return u, err
	}

	s.mu.Lock()
	apply(&s.state, u)
	s.mu.Unlock()

	s.succeed(ctx, e, a)
	return u, nil
}

// --- Read accessors ---

// Loading reports the loading flag of every entity.
func (s *Store) Loading() map[Entity]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Entity]bool, len(s.state.status))
	for e, st := range s.state.status {
		out[e] = st.Loading
	}
	return out
}

// IsLoading reports whether e is being loaded.
func (s *Store) IsLoading(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.status[e].Loading
}

// Status reports the load state of every entity.
func (s *Store) Status() map[Entity]EntityStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Entity]EntityStatus, len(s.state.status))
	for e, st := range s.state.status {
		out[e] = st
	}
	return out
}

// Ready reports whether every entity has loaded once and none is loading.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.state.status {
		if st.Loading || !st.Loaded {
			return false
		}
	}
	return true
}

// Snapshot is a consistent copy of the whole cache.
type Snapshot struct {
	Suppliers        []supplier.Supplier               `json:"suppliers"`
	Clients          []client.Client                   `json:"clients"`
	CollectionPoints []collectionpoint.CollectionPoint `json:"collectionPoints"`
	ProductTypes     []producttype.ProductType         `json:"productTypes"`
	Collections      []collection.Collection           `json:"collections"`
	Sales            []sale.Sale                       `json:"sales"`
	SalesMetadata    sale.Metadata                     `json:"salesMetadata"`
	Loading          map[Entity]bool                   `json:"loading"`
}

// Snapshot returns a copy of everything taken under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loading := make(map[Entity]bool, len(s.state.status))
	for e, st := range s.state.status {
		loading[e] = st.Loading
	}
	return Snapshot{
		Suppliers:        clone(s.state.suppliers),
		Clients:          clone(s.state.clients),
		CollectionPoints: clone(s.state.collectionPoints),
		ProductTypes:     clone(s.state.productTypes),
		Collections:      s.collectionsLocked(),
		Sales:            clone(s.state.sales),
		SalesMetadata:    s.state.salesMeta,
		Loading:          loading,
	}
}

// Suppliers returns the cached suppliers.
func (s *Store) Suppliers() []supplier.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state.suppliers)
}

// Clients returns the cached clients.
func (s *Store) Clients() []client.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state.clients)
}

// CollectionPoints returns the cached collection points.
func (s *Store) CollectionPoints() []collectionpoint.CollectionPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state.collectionPoints)
}

// ProductTypes returns the cached product types.
func (s *Store) ProductTypes() []producttype.ProductType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state.productTypes)
}

// Collections returns the cached collections with SupplierType resolved from
// the cached suppliers.
func (s *Store) Collections() []collection.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectionsLocked()
}

// Sales returns the cached sales.
func (s *Store) Sales() []sale.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state.sales)
}

// SalesMetadata returns the totals last supplied by the backend.
func (s *Store) SalesMetadata() sale.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.salesMeta
}

// SupplierCategory resolves the category of a cached supplier.
func (s *Store) SupplierCategory(id string) (supplier.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoriesLocked().SupplierCategory(id)
}

type categories map[string]supplier.Category

func (c categories) SupplierCategory(id string) (supplier.Category, bool) {
	category, ok := c[id]
	return category, ok
}

func (s *Store) categoriesLocked() categories {
	out := make(categories, len(s.state.suppliers))
	for _, sup := range s.state.suppliers {
		out[sup.ID] = sup.Type
	}
	return out
}

func (s *Store) collectionsLocked() []collection.Collection {
	lookup := s.categoriesLocked()
	out := make([]collection.Collection, len(s.state.collections))
	for i, c := range s.state.collections {
		out[i] = resources.ResolveSupplierType(c, lookup)
	}
	return out
}

// --- Slice helpers ---

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func prepend[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, v)
	return append(out, in...)
}

func replace[T any](in []T, v T, id func(T) string) []T {
	for i := range in {
		if id(in[i]) == id(v) {
			in[i] = v
			return in
		}
	}
	return in
}

// canonicalID returns the decimal form the backend echoes ("01" -> "1") so
// cache lookups match. Unparseable ids are returned as given; the adapter
// rejects them before any call.
func canonicalID(id string) string {
	n, err := dto.ParseID("id", id)
	if err != nil {
		return id
	}
	return dto.FormatID(n)
}

func remove[T any](in []T, target string, id func(T) string) []T {
	out := in[:0]
	for _, v := range in {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return out
}
