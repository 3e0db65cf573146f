package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// InterfaceIDGenerator hands out household identifiers.
type InterfaceIDGenerator interface {
	NextID() string
}

// SnowflakeIDGenerator produces short, strictly unique identifiers. The node
// serializes generation internally, so concurrent callers never collide;
// distinct node numbers keep separate instances apart.
type SnowflakeIDGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeIDGenerator creates a generator for node 0-1023.
func NewSnowflakeIDGenerator(nodeID int64) (*SnowflakeIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeIDGenerator{node: node}, nil
}

// NextID returns the next identifier as upper-case base36, about 12
// characters, easy to read out over the phone.
func (g *SnowflakeIDGenerator) NextID() string {
	return strings.ToUpper(g.node.Generate().Base36())
}
