package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

func TestSeverityMappingIsTotal(t *testing.T) {
	p := Default()
	seen := map[Pair]deck.Severity{}
	for _, sev := range deck.Severities {
		pair := p.Severity(sev)
		assert.NotEmpty(t, pair.Foreground, sev)
		assert.NotEmpty(t, pair.Background, sev)
		if prev, dup := seen[pair]; dup {
			t.Errorf("%s and %s share colors %s", prev, sev, pair)
		}
		seen[pair] = sev
	}

	assert.Equal(t, p.Severity(deck.SeverityNone), p.Severity(deck.Severity("purple")))
}

func TestDefaultIsStable(t *testing.T) {
	assert.Equal(t, Default().Severity(deck.SeverityWarning), Default().Severity(deck.SeverityWarning))
	assert.Equal(t, Pair{Foreground: "92400E", Background: "FEF3C7"}, Default().Severity(deck.SeverityWarning))
}

func TestNamed(t *testing.T) {
	p := Default()

	pair, ok := p.Named("Teal")
	assert.True(t, ok)
	assert.Equal(t, p.Tone(Teal), pair)

	pair, ok = p.Named("danger")
	assert.True(t, ok)
	assert.Equal(t, p.Severity(deck.SeverityDanger), pair)

	_, ok = p.Named("chartreuse")
	assert.False(t, ok)
}

func TestColumnAccent(t *testing.T) {
	p := Default()
	assert.Equal(t, p.Tone(Navy), p.ColumnAccent(0, ""))
	assert.Equal(t, p.Tone(Teal), p.ColumnAccent(1, "nonsense"))
	assert.Equal(t, p.Tone(Slate), p.ColumnAccent(2, ""))
	assert.Equal(t, p.Severity(deck.SeveritySuccess), p.ColumnAccent(2, "success"))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#1E3A5F", Color("1E3A5F").Hex())
}
