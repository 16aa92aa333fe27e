package manifest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeV1(t *testing.T) {
	in := &V1{
		Name: "app",
		Modules: []ModuleV1{
			{Name: "query", SchemaPath: "query.graphql"},
			{Name: "plugin", SchemaPath: "plugin.graphql"},
		},
	}

	out, err := Upgrade(in)
	require.NoError(t, err)

	assert.Equal(t, Version2, out.Version())
	assert.Equal(t, "app", out.Name)
	assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceOID, []byte("app")), out.ID)
	assert.Equal(t, uuid.Version(5), out.ID.Version())
	assert.True(t, out.CreatedAt.IsZero())
	assert.Equal(t, []Module{
		{Name: "query", SchemaPath: "query.graphql"},
		{Name: "plugin", SchemaPath: "plugin.graphql"},
	}, out.Modules)
}

func TestUpgradeV1IsDeterministic(t *testing.T) {
	a, err := Upgrade(&V1{Name: "same"})
	require.NoError(t, err)
	b, err := Upgrade(&V1{Name: "same"})
	require.NoError(t, err)
	c, err := Upgrade(&V1{Name: "other"})
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, DeriveID("same"), a.ID)
}

func TestUpgradeV2ReturnsCopy(t *testing.T) {
	in := sampleV2()
	out, err := Upgrade(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.NotSame(t, in, out)

	out.Modules[0].Name = "changed"
	assert.Equal(t, "query", in.Modules[0].Name)
}

func TestUpgradeThroughWire(t *testing.T) {
	data, err := Encode(sampleV1())
	require.NoError(t, err)

	f, err := Decode(data)
	require.NoError(t, err)
	latest, err := Upgrade(f)
	require.NoError(t, err)

	reencoded, err := Encode(latest)
	require.NoError(t, err)
	back, err := Decode(reencoded)
	require.NoError(t, err)
	assert.Equal(t, latest, back)
}

func TestUpgradeNil(t *testing.T) {
	_, err := Upgrade(nil)
	assert.ErrorIs(t, err, ErrNilFormat)

	var v2 *V2
	_, err = Upgrade(v2)
	assert.ErrorIs(t, err, ErrNilFormat)
}
