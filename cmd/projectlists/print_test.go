package main

import (
	"bytes"
	"testing"

	"github.com/nicolagi/projectlists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	testCases := []struct {
		name     string // name of the list item to print
		expected string // how the name appears in the output
	}{
		{"plain", `"plain"`},
		{"<b> & </b>", `"<b> & </b>"`},
		{"line\u2028para\u2029end", "\"line\u2028para\u2029end\""},
		{`written \u2028 by hand`, `"written \\u2028 by hand"`},
		{"back\\\u2028slash", "\"back\\\\\u2028slash\""},
		{"new\nline\ttab", `"new\nline\ttab"`},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			var buf bytes.Buffer
			err := printJSON(&buf, projectlists.ListItem{ID: "i1", Name: tc.name, ListID: "l1"})
			require.Nil(t, err)
			assert.Equal(t, "{\n  \"id\": \"i1\",\n  \"name\": "+tc.expected+",\n  \"done\": false,\n  \"listId\": \"l1\"\n}", buf.String())
		})
	}
}

func TestUnescapeSeparatorsLeavesOtherBytes(t *testing.T) {
	in := []byte(`{"a":"\\","b":"\u00e9"}`)
	assert.Equal(t, in, unescapeSeparators(in))
	assert.Equal(t, []byte(`"x\"`), unescapeSeparators([]byte(`"x\"`)))
}
