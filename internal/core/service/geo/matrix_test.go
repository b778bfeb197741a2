package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMatrix_Symmetry(t *testing.T) {
	m := NewMatrix(zap.NewNop())

	for from, row := range cityDistances {
		for to := range row {
			assert.Equal(t, m.Lookup(from, to), m.Lookup(to, from),
				"distance %s-%s should match %s-%s", from, to, to, from)
		}
	}
}

func TestMatrix_Lookup(t *testing.T) {
	m := NewMatrix(zap.NewNop())

	tests := []struct {
		name     string
		from, to string
		expected float64
	}{
		{"known pair", "Mumbai", "Surat", 280},
		{"known pair reversed", "Surat", "Mumbai", 280},
		{"same city", "Mumbai", "Mumbai", 0},
		{"same unknown city", "Timbuktu", "Timbuktu", 0},
		{"unknown pair falls back to default", "Timbuktu", "Nowhere", 200},
		{"one unknown endpoint falls back", "Mumbai", "Nowhere", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Lookup(tt.from, tt.to))
		})
	}
}

func TestMatrix_ResolveDistance_AlwaysAnswers(t *testing.T) {
	m := NewMatrix(zap.NewNop())

	km, ok := m.ResolveDistance("Timbuktu", "Nowhere")
	assert.True(t, ok)
	assert.Equal(t, 200.0, km)
}

func TestChainResolver_FirstAnswerWins(t *testing.T) {
	m := NewMatrix(zap.NewNop())
	chain := NewChainResolver(m, NewEstimator())

	// The matrix knows Mumbai-Surat as 280 road km; the estimator's
	// great-circle figure must not shadow it.
	km, ok := chain.ResolveDistance("Mumbai", "Surat")
	assert.True(t, ok)
	assert.Equal(t, 280.0, km)
}

func TestChainResolver_Empty(t *testing.T) {
	chain := NewChainResolver()
	_, ok := chain.ResolveDistance("Mumbai", "Surat")
	assert.False(t, ok)
}
