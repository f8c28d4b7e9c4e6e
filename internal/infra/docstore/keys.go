package docstore

import (
	"encoding/hex"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	prefixSubmission = "sub/"
	prefixPending    = "pending/"
	prefixLedger     = "ledger/"
	prefixUser       = "user/"
	prefixOutbox     = "outbox/"
)

func submissionKey(id uuid.UUID) string   { return prefixSubmission + id.String() }
func ledgerKey(productID uuid.UUID) string { return prefixLedger + productID.String() }
func userKey(id uuid.UUID) string          { return prefixUser + id.String() }
func outboxKey(id uuid.UUID) string        { return prefixOutbox + id.String() }

// pendingKey sorts ascending in (created_at DESC, id DESC) order by
// storing both components complemented.
func pendingKey(createdAt time.Time, id uuid.UUID) string {
	// #nosec G115 -- micros since epoch are positive for any stored time
	inv := uint64(math.MaxInt64) - uint64(createdAt.UnixMicro())
	var idInv [16]byte
	for i, b := range id {
		idInv[i] = ^b
	}
	ts := strconv.FormatUint(inv, 16)
	for len(ts) < 16 {
		ts = "0" + ts
	}
	return prefixPending + ts + "/" + hex.EncodeToString(idInv[:])
}
