package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init initializes the snowflake node with the given node ID.
// Node ID should be unique across all instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func current() *snowflake.Node {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n != nil {
		return n
	}

	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		// node 0 is always valid
		node, _ = snowflake.NewNode(0)
	}
	return node
}

// NextID generates a new unique snowflake ID.
func NextID() int64 {
	return current().Generate().Int64()
}

// NextString generates a new unique snowflake ID in base36, used as request ID.
func NextString() string {
	return current().Generate().Base36()
}
