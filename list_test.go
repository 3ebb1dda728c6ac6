package projectlists_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/nicolagi/projectlists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	fake, client := newFakeService(t)
	fake.on(http.MethodGet, "/api/project/list?id=l2", http.StatusOK, listL2)

	list, err := client.List("l2")
	require.Nil(t, err)
	assert.Equal(t, &projectlists.List{
		ID:        "l2",
		Name:      "B",
		ProjectID: "p1",
		Items:     []projectlists.ListItem{{ID: "i1", Name: "x", ListID: "l2"}},
	}, list)
}

func TestListWithNullItem(t *testing.T) {
	fake, client := newFakeService(t)
	fake.on(http.MethodGet, "/api/project/list?id=l1", http.StatusOK, `{"id":"l1","name":"A","projectId":"p1","items":[null]}`)

	list, err := client.List("l1")
	assert.Nil(t, list)
	assert.True(t, errors.Is(err, projectlists.ErrDecode), "got %v", err)
	assert.True(t, errors.Is(err, projectlists.ErrMissingField), "got %v", err)
}

func TestListNotFound(t *testing.T) {
	_, client := newFakeService(t)

	list, err := client.List("l9")
	assert.Nil(t, list)
	assert.True(t, errors.Is(err, projectlists.ErrStatusCode), "got %v", err)
}

func TestNewList(t *testing.T) {
	fake, client := newFakeService(t)
	fake.on(http.MethodPost, "/api/project/list", http.StatusOK, "l7")

	id, err := client.NewList("p1", "Groceries")
	require.Nil(t, err)
	assert.Equal(t, "l7", id)

	requests := fake.received()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/api/project/list", requests[0].Path)
	assert.Empty(t, requests[0].RawQuery)
	assert.Equal(t, "application/json", requests[0].ContentType)
	assert.JSONEq(t, `{"name":"Groceries","projectId":"p1"}`, requests[0].Body)
}

func TestNewListBodyVerbatim(t *testing.T) {
	testCases := []string{`l7`, `"l7"`, `{"id":"l7"}`, ``, "l7\n"}
	for _, body := range testCases {
		t.Run(body, func(t *testing.T) {
			fake, client := newFakeService(t)
			fake.on(http.MethodPost, "/api/project/list", http.StatusCreated, body)
			id, err := client.NewList("p1", "x")
			require.Nil(t, err)
			assert.Equal(t, body, id)
		})
	}
}

func TestNewListRejected(t *testing.T) {
	fake, client := newFakeService(t)
	fake.on(http.MethodPost, "/api/project/list", http.StatusBadRequest, "no such project")

	id, err := client.NewList("p9", "Groceries")
	assert.Empty(t, id)
	assert.True(t, errors.Is(err, projectlists.ErrStatusCode), "got %v", err)
}

func TestDeleteList(t *testing.T) {
	fake, client := newFakeService(t)
	fake.on(http.MethodDelete, "/api/project/list?id=l1", http.StatusOK, "")

	require.Nil(t, client.DeleteList("l1"))
	requests := fake.received()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodDelete, requests[0].Method)
	assert.Equal(t, "/api/project/list", requests[0].Path)
	assert.Equal(t, "id=l1", requests[0].RawQuery)
	assert.Empty(t, requests[0].Body)
	assert.Empty(t, requests[0].ContentType)
}
