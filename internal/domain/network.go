package domain

import "fmt"

// Network represents a deployment target
type Network struct {
	Name         string
	DisplayName  string
	ChainID      uint64
	RPCURL       string
	ExplorerURL  string
	ExplorerName string
	// VerifyNetwork is the network key passed to the source verifier
	VerifyNetwork string
	VerifierURL   string
	Mainnet       bool
}

// AddressURL returns the explorer page for an address, or "" when the
// network has no explorer.
func (n *Network) AddressURL(address string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s", n.ExplorerURL, address)
}

// Label returns the human name of the network
func (n *Network) Label() string {
	if n.DisplayName != "" {
		return n.DisplayName
	}
	return n.Name
}
