package projectlists

import (
	"errors"
	"fmt"
)

// ErrNoLists is returned by FullProject when the project carries no lists property at all. An empty list of lists
// is fine.
var ErrNoLists = errors.New("project has no lists")

// Project describes a project as returned by the service. Lists only references the project's lists; use
// FullProject to get their contents. Lists is nil if the service left the property out.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Lists     []ID   `json:"lists"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (project *Project) UnmarshalJSON(b []byte) error {
	var decoded Project
	err := decodeFields(b, fields{
		"id":        &decoded.ID,
		"name":      &decoded.Name,
		"color":     &decoded.Color,
		"createdAt": &decoded.CreatedAt,
		"updatedAt": &decoded.UpdatedAt,
	}, fields{
		"lists": &decoded.Lists,
	})
	if err != nil {
		return err
	}
	*project = decoded
	return nil
}

// FullProject is a project joined with the contents of all its lists. It is never sent by the service, only
// assembled by the client.
type FullProject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Lists     []List `json:"lists"`
}

// AllProjects fetches every project.
func (c *Client) AllProjects() ([]Project, error) {
	var projects []Project
	if err := c.getJSON("all projects", "/api/project/all", &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		return nil, fmt.Errorf("all projects: null instead of array: %w", ErrDecode)
	}
	return projects, nil
}

// Project fetches one project by id.
// TODO: URL-encode id once the service is known to decode query parameters.
func (c *Client) Project(id string) (*Project, error) {
	var project Project
	if err := c.getJSON("project", "/api/project?id="+id, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// FullProject fetches a project and then each of its lists, one request at a time, in the order the project
// references them. It fails as a whole if any of the requests fails.
func (c *Client) FullProject(id string) (*FullProject, error) {
	project, err := c.Project(id)
	if err != nil {
		return nil, fmt.Errorf("full project: %w", err)
	}
	if project.Lists == nil {
		return nil, fmt.Errorf("full project %s: %w", id, ErrNoLists)
	}
	lists := make([]List, 0, len(project.Lists))
	for _, ref := range project.Lists {
		list, err := c.List(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("full project %s: %w", id, err)
		}
		lists = append(lists, *list)
	}
	return &FullProject{
		ID:        project.ID,
		Name:      project.Name,
		Color:     project.Color,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
		Lists:     lists,
	}, nil
}
