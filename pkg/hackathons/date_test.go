package hackathons

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "2026-03-01", "2026-03-01", false},
		{"surrounding whitespace", " 2026-03-01 ", "2026-03-01", false},
		{"wrong layout", "03/01/2026", "", true},
		{"with time component", "2026-03-01T12:00:00Z", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateComparisons(t *testing.T) {
	early := MustParseDate("2026-02-01")
	late := MustParseDate("2026-03-01")

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.After(early))
	assert.True(t, early.Equal(MustParseDate("2026-02-01")))
}

func TestDateAddDays(t *testing.T) {
	d := MustParseDate("2026-02-25")
	assert.Equal(t, "2026-03-11", d.AddDays(14).String())
	assert.Equal(t, "2026-02-20", d.AddDays(-5).String())
}

func TestDateOfTruncates(t *testing.T) {
	moment := time.Date(2026, time.March, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-03-01", DateOf(moment).String())
}

func TestDateMarshalText(t *testing.T) {
	type wrapper struct {
		Deadline *Date `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	}

	d := MustParseDate("2026-03-01")

	jsonData, err := json.Marshal(wrapper{Deadline: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2026-03-01"}`, string(jsonData))

	yamlData, err := yaml.Marshal(wrapper{Deadline: &d})
	require.NoError(t, err)
	assert.Contains(t, string(yamlData), "2026-03-01")

	var fromYAML wrapper
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	require.NotNil(t, fromYAML.Deadline)
	assert.True(t, fromYAML.Deadline.Equal(d))

	var decoded wrapper
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	require.NotNil(t, decoded.Deadline)
	assert.True(t, decoded.Deadline.Equal(d))
}

func TestDateUnmarshalEmpty(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("")))
	assert.True(t, d.IsZero())

	require.NoError(t, d.UnmarshalText([]byte("null")))
	assert.True(t, d.IsZero())

	require.Error(t, d.UnmarshalText([]byte("not-a-date")))
}

func TestDatePtr(t *testing.T) {
	assert.Nil(t, DatePtr(""))
	assert.Nil(t, DatePtr("   "))
	assert.Nil(t, DatePtr("garbage"))

	d := DatePtr("2026-03-01")
	require.NotNil(t, d)
	assert.Equal(t, "2026-03-01", d.String())
}
