package http

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"item-api/internal/item"
)

// --- Request DTOs ---

type readReq struct {
	ItemID int64    `form:"-"` // populated from URI param
	Q      []string `form:"q"`
}

// toInput keeps the last q when the query string repeats it.
func (r readReq) toInput() item.ReadItemInput {
	in := item.ReadItemInput{ItemID: r.ItemID}
	if n := len(r.Q); n > 0 {
		in.Q = &r.Q[n-1]
	}
	return in
}

// ---

// updateReq is the Item schema. Pointers tell "absent" apart from zero values.
// name is strict; price and is_offer accept string and numeric spellings.
type updateReq struct {
	ItemID  int64   `json:"-"` // populated from URI param
	Name    *string `json:"name"     binding:"required"`
	Price   *number `json:"price"    binding:"required"`
	IsOffer *flag   `json:"is_offer"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ItemID: r.ItemID,
		Item: item.Item{
			Name:    *r.Name,
			Price:   float64(*r.Price),
			IsOffer: (*bool)(r.IsOffer),
		},
	}
}

var (
	floatType = reflect.TypeOf(float64(0))
	boolType  = reflect.TypeOf(false)
)

// number is a float that also accepts a numeric string such as "9.99".
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	if s, ok := jsonString(data); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string", Type: floatType}
		}
		*n = number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return &json.UnmarshalTypeError{Value: jsonKind(data), Type: floatType}
	}
	*n = number(f)
	return nil
}

// flag is a bool that also accepts 0, 1 and the usual yes/no words.
type flag bool

func (b *flag) UnmarshalJSON(data []byte) error {
	if s, ok := jsonString(data); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "on", "t", "true", "y", "yes":
			*b = true
		case "0", "off", "f", "false", "n", "no":
			*b = false
		default:
			return &json.UnmarshalTypeError{Value: "string", Type: boolType}
		}
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case bool:
		*b = flag(v)
		return nil
	case float64:
		if v == 0 || v == 1 {
			*b = v == 1
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: jsonKind(data), Type: boolType}
}

// jsonString unquotes data when it is a JSON string literal.
func jsonString(data []byte) (string, bool) {
	if len(data) == 0 || data[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	return s, true
}

func jsonKind(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "value"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// --- Response DTOs ---

type readResp struct {
	ItemID int64   `json:"item_id"`
	Q      *string `json:"q"`
}

func (h *handler) newReadResp(out item.ReadItemOutput) readResp {
	return readResp{
		ItemID: out.ItemID,
		Q:      out.Q,
	}
}

type updateResp struct {
	ItemName string `json:"item_name"`
	ItemID   int64  `json:"item_id"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{
		ItemName: out.ItemName,
		ItemID:   out.ItemID,
	}
}
