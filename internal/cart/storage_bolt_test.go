package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBoltStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")

	st, err := OpenBolt(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NotEmpty(t, st.Session())

	_, ok, err := st.Get()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set([]byte(`[{"quantity":1}]`)))

	raw, ok, err := st.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"quantity":1}]`, string(raw))

	require.NoError(t, st.Clear())
	_, ok, err = st.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltStorage_SessionsAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")

	a, err := OpenBolt(path, "session-a")
	require.NoError(t, err)

	ca := New(a, zap.NewNop())
	ca.AddItem(testProduct(1, "59000", ""), 1, "1")
	require.NoError(t, a.Close())

	b, err := OpenBolt(path, "session-b")
	require.NoError(t, err)
	cb := New(b, zap.NewNop())
	assert.Empty(t, cb.Items(), "a new session must not see another session's cart")
	require.NoError(t, b.Close())

	again, err := OpenBolt(path, "session-a")
	require.NoError(t, err)
	t.Cleanup(func() { _ = again.Close() })

	restored := New(again, zap.NewNop())
	require.Len(t, restored.Items(), 1)
	assert.Equal(t, 1, restored.Items()[0].Product.ID)
}
