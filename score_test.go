package encroissant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreNegate(t *testing.T) {
	assert.Equal(t, Centipawn(-50), Centipawn(50).Negate())
	assert.Equal(t, MateIn(3), MateIn(-3).Negate())
}

func TestScoreString(t *testing.T) {
	tests := []struct {
		score Score
		want  string
	}{
		{Centipawn(35), "+0.35"},
		{Centipawn(-120), "-1.20"},
		{Centipawn(0), "+0.00"},
		{Centipawn(1234), "+12.34"},
		{MateIn(3), "#3"},
		{MateIn(-5), "#-5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.score.String())
	}
}

func TestScoreJSON(t *testing.T) {
	data, err := json.Marshal(Centipawn(50))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cp":50}`, string(data))

	data, err = json.Marshal(MateIn(-3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mate":-3}`, string(data))

	var s Score
	require.NoError(t, json.Unmarshal([]byte(`{"cp":-120}`), &s))
	assert.Equal(t, Centipawn(-120), s)

	require.NoError(t, json.Unmarshal([]byte(`{"mate":4}`), &s))
	assert.Equal(t, MateIn(4), s)
}

func TestScoreJSONRejectsUnknown(t *testing.T) {
	var s Score
	assert.Error(t, json.Unmarshal([]byte(`{"elo":2800}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"cp":1,"mate":2}`), &s))

	_, err := json.Marshal(Score{Type: "winprob", Value: 1})
	assert.Error(t, err)
}
