package forms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject_RoundTrip(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"bot_token":"xoxb-1","channel_id":"C1"}`,
		`{"a":1,"b":{"c":[1,2.5,"x",null]},"d":null,"e":true,"big":12345678901234567890}`,
		`{"html":"<b>&</b>","unicode":"привет"}`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := ParseObject(in)
			require.NoError(t, err)

			second, err := ParseObject(FormatObject(first))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParseObject_KeepsNumberLiterals(t *testing.T) {
	obj, err := ParseObject(`{"port":587,"ratio":0.10}`)
	require.NoError(t, err)

	assert.Equal(t, json.Number("587"), obj["port"])
	assert.Equal(t, json.Number("0.10"), obj["ratio"])
}

func TestParseObject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "syntax", input: `{"a":`, wantErr: ErrInvalidJSON},
		{name: "trailing data", input: `{"a":1} {"b":2}`, wantErr: ErrInvalidJSON},
		{name: "empty", input: ``, wantErr: ErrInvalidJSON},
		{name: "array", input: `[1,2]`, wantErr: ErrNotAnObject},
		{name: "string", input: `"text"`, wantErr: ErrNotAnObject},
		{name: "null", input: `null`, wantErr: ErrNotAnObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObject(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatObject_Indented(t *testing.T) {
	got := FormatObject(map[string]any{"b": "2", "a": json.Number("1")})
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": \"2\"\n}", got)
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{FieldType: "Type is required", FieldName: "Name is required"}

	assert.Equal(t, "name: Name is required; type: Type is required", fe.Error())

	got, ok := AsFieldErrors(error(fe))
	require.True(t, ok)
	assert.Equal(t, "Type is required", got.Get(FieldType))

	assert.NoError(t, FieldErrors{}.errOrNil())
}
