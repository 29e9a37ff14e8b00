package ledger

import "sort"

// Image is the serializable form of a ledger, used by the snapshot codec.
type Image struct {
	AssetID    string    `codec:"asset_id" json:"asset_id"`
	AssetOwner string    `codec:"asset_owner" json:"asset_owner"`
	Supply     uint64    `codec:"supply" json:"supply"`
	Accounts   []Account `codec:"accounts" json:"accounts"`
}

// Image exports the ledger in a deterministic order.
func (l *Ledger) Image() Image {
	accounts := make([]Account, 0, len(l.accounts))
	for _, acct := range l.accounts {
		accounts = append(accounts, *acct)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Address < accounts[j].Address
	})
	return Image{
		AssetID:    l.assetID,
		AssetOwner: l.assetOwner,
		Supply:     l.supply,
		Accounts:   accounts,
	}
}

// FromImage rebuilds a ledger from its serialized form.
func FromImage(img Image) *Ledger {
	l := New(img.AssetID)
	l.assetOwner = img.AssetOwner
	l.supply = img.Supply
	for _, acct := range img.Accounts {
		copied := acct
		l.accounts[acct.Address] = &copied
	}
	return l
}
