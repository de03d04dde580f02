// Package types holds the wallet's wire-level value types and their BCS
// bindings. Everything here is plain data: no RPC, no signing, no I/O. The
// MarshalBCS/UnmarshalBCS field order on each type is its wire schema and
// must never be reordered — the bytes feed transaction hashes.
package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/go-sui-wallet/bcs"
)

// ObjectIDLength is the wire size of an object identifier.
const ObjectIDLength = 32

// ObjectID identifies an on-chain object. On the wire it is 32 raw bytes
// with no length prefix.
type ObjectID [ObjectIDLength]byte

// ErrBadObjectID is returned when parsing hex that is not exactly 32 bytes.
var ErrBadObjectID = errors.New("object id must be 32 bytes")

// ParseObjectID parses a 0x-prefixed hex string.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	b, err := hexutil.Decode(s)
	if err != nil {
		return id, err
	}
	if len(b) != ObjectIDLength {
		return id, fmt.Errorf("%w, got %d", ErrBadObjectID, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// Bytes returns the identifier as a flat slice.
func (id ObjectID) Bytes() []byte {
	return id[:]
}

// String returns the 0x-prefixed hex form.
func (id ObjectID) String() string {
	return hexutil.Encode(id[:])
}

func (id ObjectID) writeTo(w *bcs.Writer) {
	w.FixedBytes(id[:])
}

func readObjectID(r *bcs.Reader) ObjectID {
	var id ObjectID
	copy(id[:], r.FixedBytes(ObjectIDLength))
	return id
}

// MarshalBCS implements bcs.Marshaler.
func (id *ObjectID) MarshalBCS(w *bcs.Writer) error {
	id.writeTo(w)
	return nil
}

// UnmarshalBCS implements bcs.Unmarshaler.
func (id *ObjectID) UnmarshalBCS(r *bcs.Reader) error {
	*id = readObjectID(r)
	return nil
}

// Coin is a spendable balance held by an owner.
//
// Wire schema: value u64, owner string, is_locked bool.
type Coin struct {
	Value    uint64
	Owner    string
	IsLocked bool
}

func (c Coin) writeTo(w *bcs.Writer) {
	w.U64(c.Value)
	w.String(c.Owner)
	w.Bool(c.IsLocked)
}

func readCoin(r *bcs.Reader) Coin {
	var c Coin
	c.Value = r.U64()
	c.Owner = r.String()
	c.IsLocked = r.Bool()
	return c
}

// MarshalBCS implements bcs.Marshaler.
func (c *Coin) MarshalBCS(w *bcs.Writer) error {
	c.writeTo(w)
	return nil
}

// UnmarshalBCS implements bcs.Unmarshaler.
func (c *Coin) UnmarshalBCS(r *bcs.Reader) error {
	*c = readCoin(r)
	return nil
}

// CoinPage is one page of a paginated coin listing.
//
// Wire schema: coins vector<Coin>, next_cursor option<ObjectID>.
type CoinPage struct {
	Coins []Coin
	// NextCursor is nil on the last page.
	NextCursor *ObjectID
}

// MarshalBCS implements bcs.Marshaler.
func (p *CoinPage) MarshalBCS(w *bcs.Writer) error {
	bcs.WriteVector(w, p.Coins, func(w *bcs.Writer, c Coin) {
		c.writeTo(w)
	})
	bcs.WriteOption(w, p.NextCursor, func(w *bcs.Writer, id ObjectID) {
		id.writeTo(w)
	})
	return nil
}

// UnmarshalBCS implements bcs.Unmarshaler.
func (p *CoinPage) UnmarshalBCS(r *bcs.Reader) error {
	p.Coins = bcs.ReadVector(r, readCoin)
	p.NextCursor = bcs.ReadOption(r, readObjectID)
	return nil
}
