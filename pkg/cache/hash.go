package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Dashboard documents are keyed by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON hashes the JSON encoding of v, so option structs that encode the
// same hash the same. Values that cannot be encoded hash as JSON null.
func HashJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte("null")
	}
	return Hash(data)
}

// hashKey builds "<kind>:<hash of parts>".
func hashKey(kind string, parts ...any) string {
	return kind + ":" + HashJSON(parts)
}
