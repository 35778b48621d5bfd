package messages

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		lang string
		want *Catalog
	}{
		{"", Ukrainian},
		{"uk", Ukrainian},
		{"uk-UA", Ukrainian},
		{"en", English},
		{"en-GB", English},
		{" EN ", English},
		{"fr", Ukrainian},
		{"not a tag!", Ukrainian},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Same(t, tt.want, For(tt.lang))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("uk"))
	assert.True(t, Supported("en-US"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported("??"))
	assert.Equal(t, []string{"uk", "en"}, Languages())
}

// Every catalog must define every string; a blank field would print an
// empty prompt.
func TestCatalogsComplete(t *testing.T) {
	for _, c := range []*Catalog{Ukrainian, English} {
		checkStrings(t, c.Tag.String(), reflect.ValueOf(*c))
		checkStrings(t, c.Tag.String()+".labels", reflect.ValueOf(c.Labels))

		assert.Len(t, c.Menu, 9, c.Tag.String())
		assert.Len(t, c.CompareColumns, 4, c.Tag.String())
		assert.Equal(t, 0, c.Menu[len(c.Menu)-1].Choice, "exit is listed last")
		assert.Equal(t, 1, strings.Count(c.PromptRemove, "%d"))
		assert.Equal(t, 1, strings.Count(c.NameTooLong, "%d"))
		assert.Equal(t, 1, strings.Count(c.SearchHeader, "%s"))
		assert.Equal(t, 1, strings.Count(c.Labels.ItemHeading, "%d"))
		assert.Equal(t, 1, strings.Count(c.Labels.ReportItem, "%d"))
	}
}

func checkStrings(t *testing.T, name string, v reflect.Value) {
	t.Helper()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			t.Errorf("%s: field %s is empty", name, v.Type().Field(i).Name)
		}
	}
}
