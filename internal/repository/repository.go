package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"marketplace-auction/internal/auctionerrors"
	model "marketplace-auction/internal/models"
	"marketplace-auction/internal/store"
)

// AuctionDB defines the persistence interface for the auction system:
// auction records, the monotonic auction counter, per-user selling and
// bidding indices, and the admin/verifier/resolver permission registry.
type AuctionDB interface {
	Initialized() bool
	SetupRegistry(admin model.Address) error
	Admin() (model.Address, error)
	AddVerifier(verifier model.Address) error
	AddResolver(resolver model.Address) error
	IsVerifier(addr model.Address) bool
	IsResolver(addr model.Address) bool

	NextAuctionSeq() (uint32, error)
	SaveAuction(auction model.Auction) error
	GetAuction(id model.AuctionID) (model.Auction, error)
	GetAuctions(ids []model.AuctionID) []model.Auction

	AddToUserSelling(addr model.Address, id model.AuctionID) error
	AddToUserBidding(addr model.Address, id model.AuctionID) error
	UserSelling(addr model.Address) []model.AuctionID
	UserBidding(addr model.Address) []model.AuctionID
}

// LedgerRepo implements AuctionDB over a keyed Store. Records are
// JSON-encoded. The mutex serializes read-modify-write cycles on the
// counter, the permission sets and the user indices, matching the
// one-call-at-a-time execution model the business layer assumes.
type LedgerRepo struct {
	mu sync.Mutex
	st store.Store
}

// NewLedgerRepo creates a repository over the given store backend.
func NewLedgerRepo(st store.Store) *LedgerRepo {
	return &LedgerRepo{st: st}
}

// Initialized reports whether the admin record exists.
func (r *LedgerRepo) Initialized() bool {
	return r.st.Has(store.AdminKey())
}

// SetupRegistry persists the admin address, a zeroed auction counter and
// empty verifier/resolver sets. Fails if the registry already exists.
func (r *LedgerRepo) SetupRegistry(admin model.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.st.Has(store.AdminKey()) {
		return fmt.Errorf("setup registry: %w", auctionerrors.ErrAlreadyInitialized)
	}

	if err := r.setJSON(store.AdminKey(), admin); err != nil {
		return err
	}
	if err := r.setJSON(store.CounterKey(), uint32(0)); err != nil {
		return err
	}
	if err := r.setJSON(store.VerifiersKey(), []model.Address{}); err != nil {
		return err
	}
	return r.setJSON(store.ResolversKey(), []model.Address{})
}

// Admin returns the stored administrator address.
func (r *LedgerRepo) Admin() (model.Address, error) {
	var admin model.Address
	if err := r.getJSON(store.AdminKey(), &admin); err != nil {
		return "", fmt.Errorf("get admin: %w", auctionerrors.ErrNotInitialized)
	}
	return admin, nil
}

// AddVerifier adds an address to the verifier set; duplicates are ignored.
func (r *LedgerRepo) AddVerifier(verifier model.Address) error {
	return r.addToSet(store.VerifiersKey(), verifier)
}

// AddResolver adds an address to the resolver set; duplicates are ignored.
func (r *LedgerRepo) AddResolver(resolver model.Address) error {
	return r.addToSet(store.ResolversKey(), resolver)
}

// IsVerifier reports whether addr is in the verifier set.
func (r *LedgerRepo) IsVerifier(addr model.Address) bool {
	return r.setContains(store.VerifiersKey(), addr)
}

// IsResolver reports whether addr is in the resolver set.
func (r *LedgerRepo) IsResolver(addr model.Address) bool {
	return r.setContains(store.ResolversKey(), addr)
}

// NextAuctionSeq returns the current counter value and increments it.
func (r *LedgerRepo) NextAuctionSeq() (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var counter uint32
	if err := r.getJSON(store.CounterKey(), &counter); err != nil {
		return 0, fmt.Errorf("next auction seq: %w", auctionerrors.ErrNotInitialized)
	}
	if err := r.setJSON(store.CounterKey(), counter+1); err != nil {
		return 0, err
	}
	return counter, nil
}

// SaveAuction writes the full auction record in one set.
func (r *LedgerRepo) SaveAuction(auction model.Auction) error {
	return r.setJSON(store.AuctionKey(string(auction.ID)), auction)
}

// GetAuction loads one auction record by id.
func (r *LedgerRepo) GetAuction(id model.AuctionID) (model.Auction, error) {
	var auction model.Auction
	if err := r.getJSON(store.AuctionKey(string(id)), &auction); err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetAuctions loads the records for ids, skipping any that are absent.
func (r *LedgerRepo) GetAuctions(ids []model.AuctionID) []model.Auction {
	auctions := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		auction, err := r.GetAuction(id)
		if err != nil {
			continue
		}
		auctions = append(auctions, auction)
	}
	return auctions
}

// AddToUserSelling registers id in the seller's selling index.
func (r *LedgerRepo) AddToUserSelling(addr model.Address, id model.AuctionID) error {
	return r.addToIndex(store.UserSellingKey(string(addr)), id)
}

// AddToUserBidding registers id in the bidder's bidding index; an auction
// the user already bid on is not added twice.
func (r *LedgerRepo) AddToUserBidding(addr model.Address, id model.AuctionID) error {
	return r.addToIndex(store.UserBiddingKey(string(addr)), id)
}

// UserSelling returns the auction ids addr is selling.
func (r *LedgerRepo) UserSelling(addr model.Address) []model.AuctionID {
	return r.readIndex(store.UserSellingKey(string(addr)))
}

// UserBidding returns the auction ids addr has bid on.
func (r *LedgerRepo) UserBidding(addr model.Address) []model.AuctionID {
	return r.readIndex(store.UserBiddingKey(string(addr)))
}

func (r *LedgerRepo) addToSet(key store.Key, addr model.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var set []model.Address
	if err := r.getJSON(key, &set); err != nil {
		return fmt.Errorf("load set %s: %w", key, auctionerrors.ErrNotInitialized)
	}
	for _, existing := range set {
		if existing == addr {
			return nil
		}
	}
	return r.setJSON(key, append(set, addr))
}

func (r *LedgerRepo) setContains(key store.Key, addr model.Address) bool {
	var set []model.Address
	if err := r.getJSON(key, &set); err != nil {
		return false
	}
	for _, existing := range set {
		if existing == addr {
			return true
		}
	}
	return false
}

func (r *LedgerRepo) addToIndex(key store.Key, id model.AuctionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []model.AuctionID
	if r.st.Has(key) {
		if err := r.getJSON(key, &ids); err != nil {
			return err
		}
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return r.setJSON(key, append(ids, id))
}

func (r *LedgerRepo) readIndex(key store.Key) []model.AuctionID {
	var ids []model.AuctionID
	if err := r.getJSON(key, &ids); err != nil {
		return []model.AuctionID{}
	}
	return ids
}

func (r *LedgerRepo) getJSON(key store.Key, v any) error {
	raw, ok := r.st.Get(key)
	if !ok {
		return fmt.Errorf("key %s absent", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

func (r *LedgerRepo) setJSON(key store.Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	r.st.Set(key, raw)
	return nil
}
