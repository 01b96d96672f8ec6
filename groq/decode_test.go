package groq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMapRoundTrip(t *testing.T) {
	original := map[string]any{
		"role_fit_score": float64(72),
		"strengths":      []any{"Go", "SQL"},
		"analysis_notes": "solid backend profile",
	}
	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	fenced := "```json\n" + string(encoded) + "\n```"
	decoded, err := DecodeMap(fenced)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeMapWithoutFences(t *testing.T) {
	decoded, err := DecodeMap(`{"skills": ["python"]}`)
	require.NoError(t, err)
	assert.Equal(t, []any{"python"}, decoded["skills"])
}

func TestDecodeMapUntaggedFence(t *testing.T) {
	decoded, err := DecodeMap("```\n{\"a\": 1}\n```")
	require.NoError(t, err)
	assert.Equal(t, float64(1), decoded["a"])
}

func TestDecodeMapInvalid(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"truncated": `,
		"```json\n{\"truncated\":\n```",
		"",
	}
	for _, input := range cases {
		_, err := DecodeMap(input)
		assert.ErrorIs(t, err, ErrDecode, "input %q must fail closed", input)
	}
}

func TestDecodeInto(t *testing.T) {
	var out struct {
		Skills []string `json:"skills"`
	}
	err := DecodeInto("```json\n{\"skills\": [\"go\", \"sql\"]}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, out.Skills)

	err = DecodeInto("garbage", &out)
	assert.ErrorIs(t, err, ErrDecode)
}
