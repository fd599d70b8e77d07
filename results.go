package bounty

import (
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult captures any non-error result of a delivered
// transaction, to make sure people use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags mark every state transition with the action that happened,
	// the entities involved and the actor, so an external indexer can
	// follow the ledger without understanding its internals.
	Tags []common.KVPair
}

// Pair is a shorthand to build a result tag.
func Pair(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}
