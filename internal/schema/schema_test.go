package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_OrderAndLookup(t *testing.T) {
	names := Names()
	require.Len(t, names, Len())
	require.Equal(t, 40, Len(), "the generator header has 40 columns")

	assert.Equal(t, "seed", names[0])
	assert.Equal(t, "easy_axis_z_Gd", names[len(names)-1])

	for i, name := range names {
		assert.Equal(t, i, Index(name), "Index(%q)", name)
		f, ok := Lookup(name)
		require.True(t, ok, "Lookup(%q)", name)
		assert.Equal(t, At(i), f)
	}

	_, ok := Lookup("not_a_field")
	assert.False(t, ok)
	assert.Equal(t, -1, Index("not_a_field"))
}

func TestSchema_NamesIsACopy(t *testing.T) {
	names := Names()
	names[0] = "mutated"
	assert.Equal(t, "seed", Names()[0])
}

func TestSchema_Kinds(t *testing.T) {
	testCases := []struct {
		name string
		want Kind
	}{
		{"seed", Integer},
		{"nx", Integer},
		{"dt_sec", Number},
		{"frac_Gd", Number},
		{RunParentPath, String},
		{RunBaseFolder, String},
		{InputTempPath, String},
	}
	for _, tc := range testCases {
		f, ok := Lookup(tc.name)
		require.True(t, ok)
		assert.Equal(t, tc.want, f.Kind, tc.name)
	}
}

func TestSchema_Groups(t *testing.T) {
	assert.Equal(t, []string{
		GroupMagInitFe, GroupMagInitGd, GroupAppliedH, GroupEasyAxisFe, GroupEasyAxisGd,
	}, Groups())

	for _, g := range Groups() {
		members := GroupMembers(g)
		require.Len(t, members, 3, g)
		// Components of a vector are adjacent columns.
		assert.Equal(t, members[0]+1, members[1])
		assert.Equal(t, members[1]+1, members[2])
	}
	assert.Equal(t, []string{"Hx_appl_tesla", "Hy_appl_tesla", "Hz_appl_tesla"}, []string{
		At(GroupMembers(GroupAppliedH)[0]).Name,
		At(GroupMembers(GroupAppliedH)[1]).Name,
		At(GroupMembers(GroupAppliedH)[2]).Name,
	})
	assert.Nil(t, GroupMembers("no_such_group"))
}

func TestValidate(t *testing.T) {
	all := Names()

	withExtra := append(Names(), "zeta", "alpha")
	withoutTwo := append([]string{}, all[2:]...)

	testCases := []struct {
		name        string
		keys        []string
		wantMissing []string
		wantExtra   []string
	}{
		{name: "exact match", keys: all},
		{name: "exact match in reverse order", keys: reversed(all)},
		{name: "extra keys sorted", keys: withExtra, wantExtra: []string{"alpha", "zeta"}},
		{name: "missing keys in schema order", keys: withoutTwo, wantMissing: []string{"seed", "pre_steps"}},
		{name: "empty grid", keys: nil, wantMissing: all},
		{
			name:        "missing and extra both reported",
			keys:        append(append([]string{}, all[1:]...), "bogus"),
			wantMissing: []string{"seed"},
			wantExtra:   []string{"bogus"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.keys)
			if tc.wantMissing == nil && tc.wantExtra == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMismatch))

			var mm *MismatchError
			require.True(t, errors.As(err, &mm))
			assert.Equal(t, tc.wantMissing, mm.Missing)
			assert.Equal(t, tc.wantExtra, mm.Extra)

			for _, k := range append(tc.wantMissing, tc.wantExtra...) {
				assert.Contains(t, err.Error(), k)
			}
		})
	}
}

func TestValidate_EmptyGridHasNoExtra(t *testing.T) {
	err := Validate([]string{})
	var mm *MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Len(t, mm.Missing, Len())
	assert.Empty(t, mm.Extra)
	assert.NotContains(t, err.Error(), "unknown keys")
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
