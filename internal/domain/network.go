package domain

import "strings"

// Network identifies a Solana cluster with its own validator requirements
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// Networks lists every supported network in display order
var Networks = []Network{Mainnet, Testnet, Devnet}

// ParseNetwork converts user input into a Network. Matching is case-insensitive and
// accepts "mainnet-beta" as the cluster name for mainnet.
func ParseNetwork(value string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mainnet", "mainnet-beta":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	case "devnet":
		return Devnet, nil
	default:
		return "", &InvalidNetworkError{Value: value}
	}
}

// Validate reports whether n is one of the supported networks
func (n Network) Validate() error {
	for _, known := range Networks {
		if n == known {
			return nil
		}
	}
	return &InvalidNetworkError{Value: string(n)}
}

// ClusterName returns the cluster name Solana uses for the network
func (n Network) ClusterName() string {
	if n == Mainnet {
		return "mainnet-beta"
	}
	return string(n)
}

func (n Network) String() string {
	return string(n)
}

func networkNames() string {
	names := make([]string, 0, len(Networks))
	for _, n := range Networks {
		names = append(names, string(n))
	}
	return strings.Join(names, ", ")
}
