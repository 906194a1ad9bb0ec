// Package polls is the client for the deployed polls contract and its
// companion governance token. It translates Go values into contract
// call parameters, submits signed transactions, and decodes returned
// data. All poll lifecycle rules live in the contract; nothing here
// re-verifies them.
package polls

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/yourusername/polls-cli/pkg/analytics"
	"github.com/yourusername/polls-cli/pkg/config"
)

// Client talks to one polls contract deployment through an EVM node.
type Client struct {
	eth      *ethclient.Client
	chainID  *big.Int
	key      *ecdsa.PrivateKey
	from     common.Address
	contract common.Address
	token    common.Address // zero when no governance token is configured
	polls    abi.ABI
	erc20    abi.ABI
}

// Dial connects to the configured EVM node, loads the signing key, and
// verifies the node is reachable by fetching its chain id.
func Dial(ctx context.Context, cfg *config.ChainConfig) (*Client, error) {
	pollsParsed, err := abi.JSON(strings.NewReader(pollsABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse polls ABI: %w", err)
	}
	tokenParsed, err := abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ABI: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	contract, err := ParseAddress(cfg.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid contract address: %w", err)
	}

	var token common.Address
	if cfg.TokenAddress != "" {
		token, err = ParseAddress(cfg.TokenAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid token address: %w", err)
		}
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.RPCURL, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	return &Client{
		eth:      eth,
		chainID:  chainID,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		contract: contract,
		token:    token,
		polls:    pollsParsed,
		erc20:    tokenParsed,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// From returns the address transactions are signed with.
func (c *Client) From() common.Address {
	return c.from
}

// HasToken reports whether a governance token address is configured.
func (c *Client) HasToken() bool {
	return c.token != (common.Address{})
}

// ParseAddress validates and converts a hex address string.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("not a valid hex address: %q", s)
	}
	return common.HexToAddress(s), nil
}

// call executes a read-only contract function and unpacks its outputs.
func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	res, err := c.eth.CallContract(ctx, ethereum.CallMsg{From: c.from, To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	out, err := contractABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return out, nil
}

// submit packs, signs, sends a state-changing transaction against the
// polls contract and waits for it to be mined. A mined-but-reverted
// transaction is an error.
func (c *Client) submit(ctx context.Context, method string, value *big.Int, args ...interface{}) (*evmTypes.Receipt, error) {
	data, err := c.polls.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}

	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.from,
		To:    &c.contract,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas for %s: %w", method, err)
	}

	tx := evmTypes.NewTransaction(nonce, c.contract, value, gasLimit, gasPrice, data)
	signed, err := evmTypes.SignTx(tx, evmTypes.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, signed)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", signed.Hash(), err)
	}
	if receipt.Status != evmTypes.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s reverted", signed.Hash())
	}
	return receipt, nil
}

// CreatePollParams carries everything the createPoll contract function
// needs. MinTokenBalance is in whole tokens and is scaled to 18
// decimals before submission.
type CreatePollParams struct {
	Question         string
	Options          []string
	Duration         time.Duration
	Type             PollType
	Category         Category
	MinParticipation uint64
	TokenAddress     common.Address
	MinTokenBalance  uint64
	Description      string
	Tags             []string
}

// CreatePoll submits a new poll and returns the id the contract
// assigned, recovered from the PollCreated event in the receipt.
func (c *Client) CreatePoll(ctx context.Context, p CreatePollParams) (uint64, *evmTypes.Receipt, error) {
	if len(p.Options) < 2 {
		return 0, nil, fmt.Errorf("poll must have at least 2 options, got %d", len(p.Options))
	}
	description := p.Description
	if description == "" {
		description = "No description provided"
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	minBalance := new(big.Int).Mul(
		new(big.Int).SetUint64(p.MinTokenBalance),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
	)

	receipt, err := c.submit(ctx, "createPoll",
		nil,
		p.Question,
		p.Options,
		new(big.Int).SetInt64(int64(p.Duration/time.Second)),
		uint8(p.Type),
		uint8(p.Category),
		new(big.Int).SetUint64(p.MinParticipation),
		p.TokenAddress,
		minBalance,
		description,
		tags,
	)
	if err != nil {
		return 0, receipt, err
	}

	created := c.polls.Events["PollCreated"].ID
	for _, log := range receipt.Logs {
		if len(log.Topics) > 1 && log.Topics[0] == created {
			return new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(), receipt, nil
		}
	}
	return 0, receipt, fmt.Errorf("no PollCreated event in receipt for transaction %s", receipt.TxHash)
}

// Vote casts the signer's vote for one option.
func (c *Client) Vote(ctx context.Context, pollID, optionIndex uint64) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "vote", nil, new(big.Int).SetUint64(pollID), new(big.Int).SetUint64(optionIndex))
}

// VoteAsDelegate casts a vote on behalf of a delegator.
func (c *Client) VoteAsDelegate(ctx context.Context, pollID, optionIndex uint64, delegator common.Address) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "voteAsDelegate", nil, new(big.Int).SetUint64(pollID), new(big.Int).SetUint64(optionIndex), delegator)
}

// ClosePoll closes a poll; the contract restricts this to its creator.
func (c *Client) ClosePoll(ctx context.Context, pollID uint64) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "closePoll", nil, new(big.Int).SetUint64(pollID))
}

// ExtendPoll adds time to a poll's deadline; creator only.
func (c *Client) ExtendPoll(ctx context.Context, pollID uint64, additional time.Duration) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "extendPoll", nil, new(big.Int).SetUint64(pollID), new(big.Int).SetInt64(int64(additional/time.Second)))
}

// SetDelegate authorizes another address to vote for the signer.
func (c *Client) SetDelegate(ctx context.Context, delegate common.Address) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "setDelegate", nil, delegate)
}

// RemoveDelegate clears the signer's delegate.
func (c *Client) RemoveDelegate(ctx context.Context) (*evmTypes.Receipt, error) {
	return c.submit(ctx, "removeDelegate", nil)
}

// GetPoll fetches one poll's full metadata.
func (c *Client) GetPoll(ctx context.Context, pollID uint64) (*PollData, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getPoll", new(big.Int).SetUint64(pollID))
	if err != nil {
		return nil, err
	}
	poll := abi.ConvertType(out[0], new(PollData)).(*PollData)
	return poll, nil
}

// GetPollResults fetches the per-option tallies, the total vote count,
// and the total vote weight for one poll.
func (c *Client) GetPollResults(ctx context.Context, pollID uint64) ([]uint64, uint64, *big.Int, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getPollResults", new(big.Int).SetUint64(pollID))
	if err != nil {
		return nil, 0, nil, err
	}
	votes := toUint64Slice(out[0].([]*big.Int))
	total := out[1].(*big.Int).Uint64()
	weight := out[2].(*big.Int)
	return votes, total, weight, nil
}

// GetTotalVotes fetches the total vote count for one poll.
func (c *Client) GetTotalVotes(ctx context.Context, pollID uint64) (uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getTotalVotes", new(big.Int).SetUint64(pollID))
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

// IsPollActive asks the contract whether a poll can still be voted on.
func (c *Client) IsPollActive(ctx context.Context, pollID uint64) (bool, error) {
	out, err := c.call(ctx, c.contract, c.polls, "isPollActive", new(big.Int).SetUint64(pollID))
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// PollCount returns the number of polls ever created.
func (c *Client) PollCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "pollCount")
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

// GetActivePollsCount returns the contract's own count of polls that
// can still be voted on.
func (c *Client) GetActivePollsCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getActivePollsCount")
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

// HasUserVoted reports whether an address has voted on a poll.
func (c *Client) HasUserVoted(ctx context.Context, pollID uint64, user common.Address) (bool, error) {
	out, err := c.call(ctx, c.contract, c.polls, "hasUserVoted", new(big.Int).SetUint64(pollID), user)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// GetUserCreatedPolls lists the poll ids an address created.
func (c *Client) GetUserCreatedPolls(ctx context.Context, user common.Address) ([]uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getUserCreatedPolls", user)
	if err != nil {
		return nil, err
	}
	return toUint64Slice(out[0].([]*big.Int)), nil
}

// GetUserVotedPolls lists the poll ids an address has voted on.
func (c *Client) GetUserVotedPolls(ctx context.Context, user common.Address) ([]uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getUserVotedPolls", user)
	if err != nil {
		return nil, err
	}
	return toUint64Slice(out[0].([]*big.Int)), nil
}

// GetUserStats fetches participation counters for one address.
func (c *Client) GetUserStats(ctx context.Context, user common.Address) (UserStats, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getUserStats", user)
	if err != nil {
		return UserStats{}, err
	}
	return UserStats{
		PollsCreated:      out[0].(*big.Int).Uint64(),
		PollsVoted:        out[1].(*big.Int).Uint64(),
		TotalVotingWeight: out[2].(*big.Int),
	}, nil
}

// GetPollsByCategory lists poll ids in a category.
func (c *Client) GetPollsByCategory(ctx context.Context, category Category) ([]uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getPollsByCategory", uint8(category))
	if err != nil {
		return nil, err
	}
	return toUint64Slice(out[0].([]*big.Int)), nil
}

// GetPollsByTag lists poll ids carrying a tag.
func (c *Client) GetPollsByTag(ctx context.Context, tag string) ([]uint64, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getPollsByTag", tag)
	if err != nil {
		return nil, err
	}
	return toUint64Slice(out[0].([]*big.Int)), nil
}

// GetDelegation fetches both sides of an address's delegation state.
func (c *Client) GetDelegation(ctx context.Context, user common.Address) (DelegationInfo, error) {
	out, err := c.call(ctx, c.contract, c.polls, "getDelegate", user)
	if err != nil {
		return DelegationInfo{}, err
	}
	delegate := out[0].(common.Address)

	out, err = c.call(ctx, c.contract, c.polls, "getDelegators", user)
	if err != nil {
		return DelegationInfo{}, err
	}
	return DelegationInfo{
		Address:    user,
		Delegate:   delegate,
		Delegators: out[0].([]common.Address),
	}, nil
}

// TokenInfo reads metadata and the balance of account from an ERC-20
// token. The voting power view only exists on the governance token, so
// a failure there leaves VotingPower nil instead of failing the read.
func (c *Client) TokenInfo(ctx context.Context, token, account common.Address) (TokenInfo, error) {
	info := TokenInfo{}

	out, err := c.call(ctx, token, c.erc20, "name")
	if err != nil {
		return info, err
	}
	info.Name = out[0].(string)

	out, err = c.call(ctx, token, c.erc20, "symbol")
	if err != nil {
		return info, err
	}
	info.Symbol = out[0].(string)

	out, err = c.call(ctx, token, c.erc20, "decimals")
	if err != nil {
		return info, err
	}
	info.Decimals = out[0].(uint8)

	out, err = c.call(ctx, token, c.erc20, "balanceOf", account)
	if err != nil {
		return info, err
	}
	info.Balance = out[0].(*big.Int)

	out, err = c.call(ctx, token, c.erc20, "totalSupply")
	if err != nil {
		return info, err
	}
	info.TotalSupply = out[0].(*big.Int)

	if out, err = c.call(ctx, token, c.erc20, "getVotingPower", account); err == nil {
		info.VotingPower = out[0].(*big.Int)
	}

	return info, nil
}

// GovernanceToken returns the configured governance token address.
func (c *Client) GovernanceToken() common.Address {
	return c.token
}

// Snapshot assembles the analytics input for one poll from three
// contract reads. This is the boundary where option/tally alignment is
// enforced; past it the analytics engine trusts the shape.
func (c *Client) Snapshot(ctx context.Context, pollID uint64) (analytics.PollSnapshot, error) {
	poll, err := c.GetPoll(ctx, pollID)
	if err != nil {
		return analytics.PollSnapshot{}, err
	}
	votes, total, _, err := c.GetPollResults(ctx, pollID)
	if err != nil {
		return analytics.PollSnapshot{}, err
	}
	active, err := c.IsPollActive(ctx, pollID)
	if err != nil {
		return analytics.PollSnapshot{}, err
	}

	return analytics.NewPollSnapshot(
		poll.Id.Uint64(),
		poll.Question,
		poll.Options,
		votes,
		total,
		poll.CreatedAt.Int64(),
		poll.EndTime.Int64(),
		active,
	)
}

// Snapshots fetches every poll in the system, one at a time in id
// order. Calls are sequential; the CLI makes no concurrent reads.
func (c *Client) Snapshots(ctx context.Context) ([]analytics.PollSnapshot, error) {
	count, err := c.PollCount(ctx)
	if err != nil {
		return nil, err
	}

	snaps := make([]analytics.PollSnapshot, 0, count)
	for id := uint64(0); id < count; id++ {
		snap, err := c.Snapshot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch poll %d: %w", id, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func toUint64Slice(in []*big.Int) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = v.Uint64()
	}
	return out
}
