package store

import "fmt"

// Store is a keyed get/set/has/remove contract over durable storage.
// Absence of a key is reported through the ok flag of Get, never as an
// error; implementations surface I/O failures only on open and close.
type Store interface {
	Get(key Key) ([]byte, bool)
	Set(key Key, value []byte)
	Has(key Key) bool
	Remove(key Key)
}

// Key is a structured storage tag scoping one record in the key space.
type Key string

// AdminKey holds the administrator address.
func AdminKey() Key { return "admin" }

// CounterKey holds the monotonic auction counter.
func CounterKey() Key { return "auction_counter" }

// AuctionKey holds one auction record.
func AuctionKey(id string) Key { return Key(fmt.Sprintf("auction:%s", id)) }

// UserSellingKey holds the set of auction ids a user is selling.
func UserSellingKey(addr string) Key { return Key(fmt.Sprintf("user_selling:%s", addr)) }

// UserBiddingKey holds the set of auction ids a user has bid on.
func UserBiddingKey(addr string) Key { return Key(fmt.Sprintf("user_bidding:%s", addr)) }

// VerifiersKey holds the verifier principal set.
func VerifiersKey() Key { return "verifiers" }

// ResolversKey holds the resolver principal set.
func ResolversKey() Key { return "resolvers" }
