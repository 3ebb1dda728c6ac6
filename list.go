package projectlists

import (
	"net/http"
)

// List is a named collection of items belonging to one project.
type List struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ProjectID string     `json:"projectId"`
	Items     []ListItem `json:"items"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (list *List) UnmarshalJSON(b []byte) error {
	var decoded List
	err := decodeFields(b, fields{
		"id":        &decoded.ID,
		"name":      &decoded.Name,
		"projectId": &decoded.ProjectID,
		"items":     &decoded.Items,
	}, nil)
	if err != nil {
		return err
	}
	*list = decoded
	return nil
}

type listAdd struct {
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
}

// List fetches one list, including its items.
func (c *Client) List(id string) (*List, error) {
	var list List
	if err := c.getJSON("list", "/api/project/list?id="+id, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// NewList creates a list in the given project. The returned string is the response body verbatim, which the
// service fills with the new list's id.
func (c *Client) NewList(projectID string, name string) (string, error) {
	b, err := c.do("new list", http.MethodPost, "/api/project/list", &listAdd{
		Name:      name,
		ProjectID: projectID,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DeleteList deletes a list and, on the service side, its items.
// TODO: URL-encode id, as for Project.
func (c *Client) DeleteList(id string) error {
	_, err := c.do("delete list", http.MethodDelete, "/api/project/list?id="+id, nil)
	return err
}
