package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsSanitizedInput(t *testing.T) {
	input, err := Validate([]byte(`{"teamName": "  Platform\tTeam ", "names": ["Ann", " Bo\u0000b ", "Chi\u001fdi"]}`))

	require.NoError(t, err)
	require.NotNil(t, input.TeamName)
	assert.Equal(t, "Platform Team", *input.TeamName)
	assert.Equal(t, []string{"Ann", "Bo b", "Chi di"}, input.Names)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "array body",
			body:    `["Ann"]`,
			wantErr: "request body must be a JSON object",
		},
		{
			name:    "null body",
			body:    `null`,
			wantErr: "request body must be a JSON object",
		},
		{
			name:    "scalar body",
			body:    `"hello"`,
			wantErr: "request body must be a JSON object",
		},
		{
			name:    "malformed JSON",
			body:    `{"names": [`,
			wantErr: "request body must be a JSON object",
		},
		{
			name:    "missing names",
			body:    `{}`,
			wantErr: "names must be an array of strings",
		},
		{
			name:    "names not an array",
			body:    `{"names": "Ann"}`,
			wantErr: "names must be an array of strings",
		},
		{
			name:    "names with non-string entry",
			body:    `{"names": ["Ann", 7]}`,
			wantErr: "names must be an array of strings",
		},
		{
			name:    "empty names array",
			body:    `{"names": []}`,
			wantErr: "names must contain at least one name",
		},
		{
			name:    "too many names",
			body:    `{"names": [` + strings.Repeat(`"A",`, 25) + `"A"]}`,
			wantErr: "names must contain at most 25 names",
		},
		{
			name:    "name empty after sanitization",
			body:    `{"names": ["Ann", "\t\n"]}`,
			wantErr: "names[1] is empty after removing control characters and whitespace",
		},
		{
			name:    "name too long",
			body:    `{"names": ["` + strings.Repeat("a", 41) + `"]}`,
			wantErr: "names[0] must be at most 40 characters",
		},
		{
			name:    "teamName not a string",
			body:    `{"teamName": 42, "names": ["Ann"]}`,
			wantErr: "teamName must be a string",
		},
		{
			name:    "teamName too long",
			body:    `{"teamName": "` + strings.Repeat("t", 61) + `", "names": ["Ann"]}`,
			wantErr: "teamName must be at most 60 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate([]byte(tt.body))

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateRejectsRawControlBytesAsMalformedJSON(t *testing.T) {
	// JSON forbids unescaped control characters inside strings, so a
	// raw byte is a shape error; only the \u-escaped form reaches the
	// sanitizer.
	raw := []byte(`{"names": ["Chi`)
	raw = append(raw, 0x1f)
	raw = append(raw, []byte(`di"]}`)...)

	_, err := Validate(raw)
	require.Error(t, err)
	assert.Equal(t, "request body must be a JSON object", err.Error())

	input, err := Validate([]byte(`{"names": ["Chi\u001fdi"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chi di"}, input.Names)
}

func TestValidateBoundaryLengths(t *testing.T) {
	longName := strings.Repeat("n", MaxNameLen)
	longTeam := strings.Repeat("t", MaxTeamNameLen)

	input, err := Validate([]byte(`{"teamName": "` + longTeam + `", "names": ["` + longName + `"]}`))

	require.NoError(t, err)
	assert.Equal(t, longName, input.Names[0])
	assert.Equal(t, longTeam, *input.TeamName)
}

func TestValidateMaxNamesAccepted(t *testing.T) {
	body := `{"names": [` + strings.Repeat(`"A",`, 24) + `"A"]}`

	input, err := Validate([]byte(body))

	require.NoError(t, err)
	assert.Len(t, input.Names, MaxNames)
}

func TestValidateEmptyTeamNameTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty string", body: `{"teamName": "", "names": ["Ann"]}`},
		{name: "whitespace only", body: `{"teamName": " \t ", "names": ["Ann"]}`},
		{name: "control characters only", body: `{"teamName": "\u0001\u0002", "names": ["Ann"]}`},
		{name: "explicit null", body: `{"teamName": null, "names": ["Ann"]}`},
		{name: "omitted", body: `{"names": ["Ann"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := Validate([]byte(tt.body))

			require.NoError(t, err)
			assert.Nil(t, input.TeamName)
		})
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	// 40 multibyte runes is at the limit even though it is 80 bytes.
	name := strings.Repeat("é", MaxNameLen)

	input, err := Validate([]byte(`{"names": ["` + name + `"]}`))

	require.NoError(t, err)
	assert.Equal(t, name, input.Names[0])
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain string untouched", input: "Ann", want: "Ann"},
		{name: "control characters become spaces", input: "An\x00n", want: "An n"},
		{name: "DEL stripped", input: "Ann\x7f", want: "Ann"},
		{name: "whitespace runs collapse", input: "  Ann   Marie \t ", want: "Ann Marie"},
		{name: "mixed control and whitespace", input: "\tAnn\n\nBo\x01 ", want: "Ann Bo"},
		{name: "only junk becomes empty", input: "\t\x00\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
