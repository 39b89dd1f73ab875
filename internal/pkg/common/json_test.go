package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBytes(t *testing.T) {
	var out map[string]interface{}
	require.NoError(t, ParseJSONBytes([]byte(`{"idMeal":"52803","n":1}`), &out))
	assert.Equal(t, "52803", out["idMeal"])
	assert.Equal(t, json.Number("1"), out["n"])

	assert.Error(t, ParseJSONBytes([]byte(`{} {}`), &out))
	assert.Error(t, ParseJSONBytes([]byte(`<html>`), &out))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "info", ParseLevel("verbose").String())
}
