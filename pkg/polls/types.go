package polls

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// PollType selects the contract's vote weighting scheme.
type PollType uint8

const (
	PollTypeStandard PollType = iota
	PollTypeWeighted
	PollTypeQuadratic
)

// ParsePollType maps a user-supplied name to its contract enum value.
func ParsePollType(s string) (PollType, error) {
	switch strings.ToLower(s) {
	case "standard":
		return PollTypeStandard, nil
	case "weighted":
		return PollTypeWeighted, nil
	case "quadratic":
		return PollTypeQuadratic, nil
	default:
		return 0, fmt.Errorf("invalid poll type %q, use: standard, weighted, quadratic", s)
	}
}

func (t PollType) String() string {
	switch t {
	case PollTypeStandard:
		return "Standard"
	case PollTypeWeighted:
		return "Weighted"
	case PollTypeQuadratic:
		return "Quadratic"
	default:
		return "Unknown"
	}
}

// Category is the contract's poll category enum.
type Category uint8

const (
	CategoryGeneral Category = iota
	CategoryGovernance
	CategoryTechnical
	CategoryCommunity
	CategoryFinance
)

// ParseCategory maps a user-supplied name to its contract enum value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "general":
		return CategoryGeneral, nil
	case "governance":
		return CategoryGovernance, nil
	case "technical":
		return CategoryTechnical, nil
	case "community":
		return CategoryCommunity, nil
	case "finance":
		return CategoryFinance, nil
	default:
		return 0, fmt.Errorf("invalid category %q, use: general, governance, technical, community, finance", s)
	}
}

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryGovernance:
		return "Governance"
	case CategoryTechnical:
		return "Technical"
	case CategoryCommunity:
		return "Community"
	case CategoryFinance:
		return "Finance"
	default:
		return "Unknown"
	}
}

// Status is the contract's poll lifecycle enum.
type Status uint8

const (
	StatusActive Status = iota
	StatusClosed
	StatusExpired
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusClosed:
		return "Closed"
	case StatusExpired:
		return "Expired"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// PollData mirrors the getPoll return tuple. Field names and order must
// match the ABI components so unpacking can map into it.
type PollData struct {
	Id               *big.Int
	Question         string
	Options          []string
	Creator          common.Address
	CreatedAt        *big.Int
	EndTime          *big.Int
	Status           uint8
	PollType         uint8
	Category         uint8
	MinParticipation *big.Int
	TotalVotes       *big.Int
	TotalWeight      *big.Int
	Description      string
	Tags             []string
}

// UserStats mirrors the getUserStats return values.
type UserStats struct {
	PollsCreated      uint64
	PollsVoted        uint64
	TotalVotingWeight *big.Int
}

// TokenInfo is the metadata and balances read from the governance
// token for one address.
type TokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	Balance     *big.Int
	TotalSupply *big.Int
	VotingPower *big.Int // nil when the token has no voting power view
}

// BalanceString formats Balance scaled down by Decimals.
func (t TokenInfo) BalanceString() string {
	return scaleDown(t.Balance, t.Decimals)
}

// TotalSupplyString formats TotalSupply scaled down by Decimals.
func (t TokenInfo) TotalSupplyString() string {
	return scaleDown(t.TotalSupply, t.Decimals)
}

// VotingPowerString formats VotingPower scaled down by Decimals.
func (t TokenInfo) VotingPowerString() string {
	if t.VotingPower == nil {
		return "0.00"
	}
	return scaleDown(t.VotingPower, t.Decimals)
}

func scaleDown(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0.00"
	}
	f := new(big.Float).SetInt(amount)
	f.Quo(f, new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))
	return f.Text('f', 2)
}

// DelegationInfo describes one address's delegation relationships.
type DelegationInfo struct {
	Address    common.Address
	Delegate   common.Address // zero address when no delegate is set
	Delegators []common.Address
}

// HasDelegate reports whether a delegate is set.
func (d DelegationInfo) HasDelegate() bool {
	return d.Delegate != (common.Address{})
}
