// Package dto provides Data Transfer Objects for dashboard API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"recyclehub/internal/core/types"
)

// ListQuery contains the query parameters every list endpoint accepts.
type ListQuery struct {
	Search string `form:"search"`
	Filter string `form:"filter"` // boolean expression over `item`
	Limit  int    `form:"limit" binding:"min=0,max=1000"`
	Offset int    `form:"offset" binding:"min=0"`
}

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
}

// Page cuts items to the window described by q. A zero limit keeps everything after offset.
func Page[T any](items []T, q ListQuery) ListResponse {
	total := len(items)
	start := min(q.Offset, total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}
	page := items[start:end]
	if page == nil {
		page = []T{}
	}
	return ListResponse{
		Items:      page,
		TotalCount: total,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
}

// SuccessResponse is returned by endpoints without a payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AmountText is an amount as typed in a form: "R$ 1.234,56", "1,5" or a plain JSON number.
type AmountText string

// UnmarshalJSON accepts a JSON string or number.
func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("amount must be a string or a number, got %s", data)
	}
	*a = AmountText(data)
	return nil
}

// Parse normalizes the text into an Amount.
func (a AmountText) Parse(field string) (types.Amount, error) {
	return types.ParseAmount(field, string(a))
}

func parseOptional(field string, a *AmountText) (*types.Amount, error) {
	if a == nil {
		return nil, nil
	}
	v, err := a.Parse(field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
