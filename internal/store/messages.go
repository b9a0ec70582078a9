package store

import (
	"strings"

	"recyclehub/internal/core/apperror"
)

// Entity names one cached collection.
type Entity string

const (
	EntitySuppliers        Entity = "suppliers"
	EntityClients          Entity = "clients"
	EntityCollectionPoints Entity = "collection-points"
	EntityProductTypes     Entity = "product-types"
	EntityCollections      Entity = "collections"
	EntitySales            Entity = "sales"
)

// Entities lists every entity in load order.
func Entities() []Entity {
	return []Entity{
		EntitySuppliers, EntityClients, EntityCollectionPoints,
		EntityProductTypes, EntityCollections, EntitySales,
	}
}

// Action names a store operation.
type Action string

const (
	ActionLoad         Action = "load"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionUpdateStatus Action = "update-status"
)

type label struct {
	plural   string
	singular string
	feminine bool
	created  string // verb used on create, "criar" by default
}

var labels = map[Entity]label{
	EntitySuppliers:        {plural: "fornecedores", singular: "fornecedor"},
	EntityClients:          {plural: "clientes", singular: "cliente"},
	EntityCollectionPoints: {plural: "pontos de coleta", singular: "ponto de coleta"},
	EntityProductTypes:     {plural: "tipos de produto", singular: "tipo de produto"},
	EntityCollections:      {plural: "coletas", singular: "coleta", feminine: true},
	EntitySales:            {plural: "vendas", singular: "venda", feminine: true, created: "adicionar"},
}

// FailureMessage is the fallback phrase shown when action fails on e.
func FailureMessage(e Entity, a Action) string {
	l := labels[e]
	switch a {
	case ActionLoad:
		return "Erro ao carregar " + l.plural
	case ActionCreate:
		verb := l.created
		if verb == "" {
			verb = "criar"
		}
		return "Erro ao " + verb + " " + l.singular
	case ActionUpdate:
		return "Erro ao atualizar " + l.singular
	case ActionDelete:
		return "Erro ao excluir " + l.singular
	case ActionUpdateStatus:
		return "Erro ao atualizar status da " + l.singular
	}
	return "Erro"
}

// SuccessMessage is the confirmation shown when action succeeds on e.
func SuccessMessage(e Entity, a Action) string {
	l := labels[e]
	ending := "o"
	if l.feminine {
		ending = "a"
	}

	switch a {
	case ActionCreate:
		participle := "criad"
		if l.created == "adicionar" {
			participle = "adicionad"
		}
		return capitalize(l.singular) + " " + participle + ending + " com sucesso!"
	case ActionUpdate:
		return capitalize(l.singular) + " atualizad" + ending + " com sucesso!"
	case ActionDelete:
		return capitalize(l.singular) + " excluíd" + ending + " com sucesso!"
	case ActionUpdateStatus:
		return "Status da " + l.singular + " atualizado com sucesso!"
	}
	return ""
}

// ErrorMessage combines the fallback phrase with the backend message when there is one.
func ErrorMessage(e Entity, a Action, err error) string {
	fallback := FailureMessage(e, a)
	if appErr, ok := apperror.AsAppError(err); ok && appErr.Message != "" {
		return fallback + ": " + appErr.Message
	}
	return fallback
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
