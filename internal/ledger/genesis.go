package ledger

const (
	genesisTimestamp int64 = 1_600_000_000_000_000_000
	genesisPayload         = "MiniCoin genesis"
)

var genesis = Seal(Block{
	Index:     0,
	Timestamp: genesisTimestamp,
	Payload:   []byte(genesisPayload),
})

// Genesis returns the agreed-upon first block. Its previous hash is the zero
// hash sentinel and it is exempt from proof of work.
func Genesis() Block {
	g := genesis
	g.Payload = append([]byte(nil), genesis.Payload...)
	return g
}

// IsGenesis reports whether b is exactly the genesis constant.
func IsGenesis(b Block) bool {
	return equalBlocks(b, genesis)
}
