package projectlists

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
)

// ListItem is a single task in a list.
type ListItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Done   bool   `json:"done"`
	ListID string `json:"listId"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (item *ListItem) UnmarshalJSON(b []byte) error {
	var decoded ListItem
	err := decodeFields(b, fields{
		"id":     &decoded.ID,
		"name":   &decoded.Name,
		"done":   &decoded.Done,
		"listId": &decoded.ListID,
	}, nil)
	if err != nil {
		return err
	}
	*item = decoded
	return nil
}

// ItemPatch describes an update to an existing item. It serializes to the body expected by UpdateItem, i.e., the
// item id next to a data object holding only the attributes being changed.
type ItemPatch struct {
	id    string
	attrs map[string]string
}

func NewItemPatch(id string) *ItemPatch {
	var item ItemPatch
	item.id = id
	item.attrs = make(map[string]string)
	return &item
}

func (item *ItemPatch) WithDone(value bool) *ItemPatch {
	item.attrs["done"] = strconv.FormatBool(value)
	return item
}

// MarshalJSON implements json.Marshaler.
func (item *ItemPatch) MarshalJSON() ([]byte, error) {
	id, err := json.Marshal(item.id)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(item.attrs))
	for k := range item.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	buf := bytes.NewBuffer(nil)
	_, _ = fmt.Fprintf(buf, `{"id":%s,"data":{`, id)
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		_, _ = fmt.Fprintf(buf, `%q:%s`, k, item.attrs[k])
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

type itemAdd struct {
	Name   string `json:"name"`
	ListID string `json:"listId"`
}

// UpdateItem sends the patch to the service.
func (c *Client) UpdateItem(item *ItemPatch) error {
	_, err := c.do("update item", http.MethodPatch, "/api/project/list/item", item)
	return err
}

// NewListItem creates an item in the given list. As with NewList, the response body is returned verbatim.
func (c *Client) NewListItem(listID string, name string) (string, error) {
	b, err := c.do("new list item", http.MethodPost, "/api/project/list/item", &itemAdd{
		Name:   name,
		ListID: listID,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DeleteListItem deletes a single item.
func (c *Client) DeleteListItem(id string) error {
	_, err := c.do("delete list item", http.MethodDelete, "/api/project/list/item?id="+id, nil)
	return err
}
