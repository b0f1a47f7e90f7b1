package collecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netDevFixture = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:  500 5 0 0 0 0 0 0  500 5 0 0 0 0 0 0
  eth0: 1000 10 0 0 0 0 0 0 2000 20 0 0 0 0 0 0
`

func TestNetworkParsesInterfaceLines(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "net/dev", netDevFixture)

	c := NewNetworkCollector(root, discardLogger())
	c.Refresh()

	require.Len(t, c.Records(), 2)

	lo := c.Records()[0]
	assert.Equal(t, "lo", lo.Name)
	assert.Equal(t, uint64(500), lo.RxBytes)

	eth0 := c.Records()[1]
	assert.Equal(t, "eth0", eth0.Name)
	assert.Equal(t, uint64(1000), eth0.RxBytes)
	assert.Equal(t, uint64(10), eth0.RxPackets)
	assert.Equal(t, uint64(2000), eth0.TxBytes)
	assert.Equal(t, uint64(20), eth0.TxPackets)
}

func TestNetworkSkipsShortAndColonlessLines(t *testing.T) {
	root := t.TempDir()
	fixture := "h1\nh2\nno colon here\n  eth1: 1 2 3\n  eth2: 9 8 0 0 0 0 0 0 7 6 0 0 0 0 0 0\n"
	writeProcFile(t, root, "net/dev", fixture)

	c := NewNetworkCollector(root, discardLogger())
	c.Refresh()

	require.Len(t, c.Records(), 1)
	assert.Equal(t, "eth2", c.Records()[0].Name)
	assert.Equal(t, uint64(9), c.Records()[0].RxBytes)
	assert.Equal(t, uint64(6), c.Records()[0].TxPackets)
}
