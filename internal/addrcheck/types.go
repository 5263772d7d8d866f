package addrcheck

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// NameLookup resolves a registered ledger name to its owning address.
// found is false when the name does not exist; err reports transport-level
// failures only.
type NameLookup interface {
	NameData(ctx context.Context, name string) (owner string, found bool, err error)
}
