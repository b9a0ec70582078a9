// Package seed loads YAML fixtures and creates them through the store, so every
// record goes through the same validation and conversions as the dashboard.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/store"
	"recyclehub/pkg/logger"
)

// Fixtures is the content of a fixtures file. Collections and sales refer to
// catalog entries by their Key.
type Fixtures struct {
	Suppliers        []Supplier        `yaml:"suppliers"`
	Clients          []Client          `yaml:"clients"`
	CollectionPoints []CollectionPoint `yaml:"collectionPoints"`
	ProductTypes     []ProductType     `yaml:"productTypes"`
	Collections      []Collection      `yaml:"collections"`
	Sales            []Sale            `yaml:"sales"`
}

type Supplier struct {
	Key          string `yaml:"key"`
	Name         string `yaml:"name"`
	Document     string `yaml:"document"`
	Phone        string `yaml:"phone"`
	Email        string `yaml:"email"`
	Address      string `yaml:"address"`
	Type         string `yaml:"type"`
	MaterialType string `yaml:"materialType"`
}

type Client struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
}

type CollectionPoint struct {
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email"`
	Responsible string `yaml:"responsible"`
}

type ProductType struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Unit        string `yaml:"unit"`
}

type Collection struct {
	Supplier string `yaml:"supplier"`
	Product  string `yaml:"product"`
	Date     string `yaml:"date"`
	Time     string `yaml:"time"`
	Location string `yaml:"location"`
	Weight   string `yaml:"weight"`
	Value    string `yaml:"value"`
	Status   string `yaml:"status"`
}

type Sale struct {
	Client  string `yaml:"client"`
	Product string `yaml:"product"`
	Date    string `yaml:"date"`
	Weight  string `yaml:"weight"`
	Value   string `yaml:"value"`
}

// Result counts the records created per entity.
type Result map[store.Entity]int

// Load reads fixtures from path.
func Load(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses fixtures from r. Unknown fields are rejected.
func Decode(r io.Reader) (Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return fx, nil
}

// Seeder creates fixtures through a store.
type Seeder struct {
	store *store.Store
	log   *logger.Logger
}

// New creates a seeder.
func New(s *store.Store, log *logger.Logger) *Seeder {
	return &Seeder{store: s, log: log.WithComponent("seed")}
}

// Apply creates catalogs first, then collections and sales, stopping at the
// first failure. Result holds what was created up to that point.
func (s *Seeder) Apply(ctx context.Context, fx Fixtures) (Result, error) {
	res := Result{}
	suppliers := map[string]string{}
	clients := map[string]string{}
	products := map[string]string{}

	for i, f := range fx.Suppliers {
		created, err := s.store.AddSupplier(ctx, supplier.Draft{
			Name: f.Name, Document: f.Document, Phone: f.Phone, Email: f.Email,
			Address: f.Address, Type: supplier.Category(f.Type), MaterialType: f.MaterialType,
		})
		if err != nil {
			return res, fixtureErr(store.EntitySuppliers, i, f.Key, err)
		}
		suppliers[keyOr(f.Key, f.Name)] = created.ID
		res[store.EntitySuppliers]++
	}

	for i, f := range fx.Clients {
		created, err := s.store.AddClient(ctx, client.Draft{
			Name: f.Name, Document: f.Document, Phone: f.Phone, Email: f.Email, Address: f.Address,
		})
		if err != nil {
			return res, fixtureErr(store.EntityClients, i, f.Key, err)
		}
		clients[keyOr(f.Key, f.Name)] = created.ID
		res[store.EntityClients]++
	}

	for i, f := range fx.CollectionPoints {
		if _, err := s.store.AddCollectionPoint(ctx, collectionpoint.Draft{
			Name: f.Name, Address: f.Address, Phone: f.Phone, Email: f.Email, Responsible: f.Responsible,
		}); err != nil {
			return res, fixtureErr(store.EntityCollectionPoints, i, f.Name, err)
		}
		res[store.EntityCollectionPoints]++
	}

	for i, f := range fx.ProductTypes {
		created, err := s.store.AddProductType(ctx, producttype.Draft{
			Name: f.Name, Description: f.Description, Unit: producttype.Unit(f.Unit),
		})
		if err != nil {
			return res, fixtureErr(store.EntityProductTypes, i, f.Key, err)
		}
		products[keyOr(f.Key, f.Name)] = created.ID
		res[store.EntityProductTypes]++
	}

	for i, f := range fx.Collections {
		d, err := collectionDraft(f, suppliers, products)
		if err == nil {
			_, err = s.store.AddCollection(ctx, d)
		}
		if err != nil {
			return res, fixtureErr(store.EntityCollections, i, "", err)
		}
		res[store.EntityCollections]++
	}

	for i, f := range fx.Sales {
		d, err := saleDraft(f, clients, products)
		if err == nil {
			_, err = s.store.AddSale(ctx, d)
		}
		if err != nil {
			return res, fixtureErr(store.EntitySales, i, "", err)
		}
		res[store.EntitySales]++
	}

	s.log.Infow("fixtures applied", "created", res)
	return res, nil
}

func collectionDraft(f Collection, suppliers, products map[string]string) (collection.Draft, error) {
	supplierID, err := ref("supplier", f.Supplier, suppliers)
	if err != nil {
		return collection.Draft{}, err
	}
	productID, err := ref("product", f.Product, products)
	if err != nil {
		return collection.Draft{}, err
	}
	weight, value, err := amounts(f.Weight, f.Value)
	if err != nil {
		return collection.Draft{}, err
	}
	return collection.Draft{
		SupplierID: supplierID,
		ProductID:  productID,
		Date:       f.Date,
		Time:       f.Time,
		Location:   f.Location,
		Weight:     weight,
		Value:      value,
		Status:     collection.Status(f.Status),
	}, nil
}

func saleDraft(f Sale, clients, products map[string]string) (sale.Draft, error) {
	clientID, err := ref("client", f.Client, clients)
	if err != nil {
		return sale.Draft{}, err
	}
	productID, err := ref("product", f.Product, products)
	if err != nil {
		return sale.Draft{}, err
	}
	weight, value, err := amounts(f.Weight, f.Value)
	if err != nil {
		return sale.Draft{}, err
	}
	return sale.Draft{
		ClientID:  clientID,
		ProductID: productID,
		Weight:    weight,
		Value:     value,
		Date:      f.Date,
	}, nil
}

func amounts(weight, value string) (types.Amount, types.Amount, error) {
	w, err := types.ParseAmount("weight", weight)
	if err != nil {
		return types.Amount{}, types.Amount{}, err
	}
	v, err := types.ParseAmount("value", value)
	if err != nil {
		return types.Amount{}, types.Amount{}, err
	}
	return w, v, nil
}

// ref resolves a fixture key to the id the backend assigned.
func ref(kind, key string, ids map[string]string) (string, error) {
	id, ok := ids[key]
	if !ok {
		return "", fmt.Errorf("unknown %s %q", kind, key)
	}
	return id, nil
}

func keyOr(key, name string) string {
	if key != "" {
		return key
	}
	return name
}

func fixtureErr(e store.Entity, index int, key string, err error) error {
	if key != "" {
		return fmt.Errorf("%s[%d] (%s): %w", e, index, key, err)
	}
	return fmt.Errorf("%s[%d]: %w", e, index, err)
}
