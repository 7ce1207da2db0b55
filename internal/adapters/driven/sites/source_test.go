package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

func TestSource_Load_Builtin(t *testing.T) {
	sites, err := NewSource().Load()

	require.NoError(t, err)
	require.NotEmpty(t, sites)
	assert.Equal(t, domain.Site{Name: "Greenhouse", Domain: "boards.greenhouse.io"}, sites[0])
	assert.Equal(t, domain.Site{Name: "Lever", Domain: "jobs.lever.co"}, sites[1])
}

func TestSource_Load_BuiltinDomainsUnique(t *testing.T) {
	sites, err := NewSource().Load()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range sites {
		assert.False(t, seen[s.Domain], "duplicate domain %s", s.Domain)
		seen[s.Domain] = true
	}
}

func TestSource_Load_PreservesOrder(t *testing.T) {
	data := []byte(`
[[site]]
name = "Zeta"
domain = "zeta.example"

[[site]]
name = "Alpha"
domain = "alpha.example"
`)

	sites, err := NewSourceFromBytes(data).Load()

	require.NoError(t, err)
	assert.Equal(t, []domain.Site{
		{Name: "Zeta", Domain: "zeta.example"},
		{Name: "Alpha", Domain: "alpha.example"},
	}, sites)
}

func TestSource_Load_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "duplicate domain",
			data: "[[site]]\nname = \"A\"\ndomain = \"x.example\"\n[[site]]\nname = \"B\"\ndomain = \"x.example\"\n",
			want: domain.ErrDuplicateDomain,
		},
		{
			name: "empty registry",
			data: "",
			want: domain.ErrEmptyRegistry,
		},
		{
			name: "missing domain",
			data: "[[site]]\nname = \"A\"\n",
			want: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSourceFromBytes([]byte(tt.data)).Load()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSource_Load_InvalidTOML(t *testing.T) {
	_, err := NewSourceFromBytes([]byte("[[site]\nname = ")).Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding site registry")
}
