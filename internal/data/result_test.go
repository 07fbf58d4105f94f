package data_test

import (
	"testing"

	"github.com/antonio-alexander/go-employee-directory/internal/data"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := map[string]struct {
		body  []byte
		empty bool
	}{
		"nil":          {body: nil, empty: true},
		"zero_length":  {body: []byte{}, empty: true},
		"whitespace":   {body: []byte(" \n\t"), empty: true},
		"null":         {body: []byte("null"), empty: true},
		"false":        {body: []byte("false"), empty: true},
		"zero":         {body: []byte("0"), empty: true},
		"empty_string": {body: []byte(`""`), empty: true},
		"empty_array":  {body: []byte("[]"), empty: false},
		"empty_object": {body: []byte("{}"), empty: false},
		"object":       {body: []byte(`{"id":1}`), empty: false},
		"true":         {body: []byte("true"), empty: false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.empty, data.IsEmpty(c.body))
		})
	}
}

func TestResult(t *testing.T) {
	result := data.Ok([]byte(`[{"id":1}]`))
	assert.True(t, result.Ok())
	assert.Nil(t, result.Err)
	assert.JSONEq(t, `[{"id":1}]`, string(result.Payload))

	result = data.Err(data.KindInvalidInput, data.MessageInvalidEmployeeId)
	assert.False(t, result.Ok())
	assert.Nil(t, result.Payload)
	if assert.NotNil(t, result.Err) {
		assert.Equal(t, data.KindInvalidInput, result.Err.Kind)
		assert.Equal(t, "invalid_input: Invalid employee ID", result.Err.Error())
	}
}
