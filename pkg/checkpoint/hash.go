package checkpoint

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash is the identity of a torrent file's contents in the checkpoint
func Hash(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])
}
