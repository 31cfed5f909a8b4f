package probe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrayhash/aht/hash"
)

// S8: Probe never produces a false negative, under both a well-distributed
// hash and the degenerate constant hash.
func TestScenarioS8NoFalseNegatives(t *testing.T) {
	for _, h := range []struct {
		name string
		fn   hash.Func
	}{
		{"xxhash", hash.XXHash},
		{"constant", hash.Constant},
	} {
		t.Run(h.name, func(t *testing.T) {
			p := New(h.fn, 128, 0.01)

			for i := 0; i < 128; i++ {
				key := []byte(fmt.Sprintf("key-%d", i))
				ref, err := p.Get(key)
				require.NoError(t, err)
				ref.Store(uint64(i))
			}

			require.Equal(t, 128, p.Size())

			for i := 0; i < 128; i++ {
				key := []byte(fmt.Sprintf("key-%d", i))
				ref, found, err := p.TryGet(key)
				require.NoError(t, err)
				require.True(t, found, "false negative for %s", key)
				require.EqualValues(t, i, ref.Load())
			}
		})
	}
}

func TestProbeRejectsAbsentKeyWithoutMutating(t *testing.T) {
	p := New(hash.XXHash, 16, 0.001)

	ref, err := p.Get([]byte("present"))
	require.NoError(t, err)
	ref.Store(1)

	_, found, err := p.TryGet([]byte("definitely-not-present-xyz"))
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, p.Size())
}
