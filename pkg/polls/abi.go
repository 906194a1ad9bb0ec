package polls

// JSON ABI fragments for the two deployed contracts this client talks
// to. The polls contract owns the full poll lifecycle; the governance
// token is a plain ERC-20 extended with a voting power view.

const pollsABI = `[
	{"type":"function","name":"createPoll","stateMutability":"payable",
		"inputs":[
			{"name":"_question","type":"string"},
			{"name":"_options","type":"string[]"},
			{"name":"_durationInSeconds","type":"uint256"},
			{"name":"_pollType","type":"uint8"},
			{"name":"_category","type":"uint8"},
			{"name":"_minParticipation","type":"uint256"},
			{"name":"_tokenAddress","type":"address"},
			{"name":"_minTokenBalance","type":"uint256"},
			{"name":"_description","type":"string"},
			{"name":"_tags","type":"string[]"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"vote","stateMutability":"nonpayable",
		"inputs":[{"name":"_pollId","type":"uint256"},{"name":"_optionIndex","type":"uint256"}],
		"outputs":[]},
	{"type":"function","name":"voteAsDelegate","stateMutability":"nonpayable",
		"inputs":[{"name":"_pollId","type":"uint256"},{"name":"_optionIndex","type":"uint256"},{"name":"_delegator","type":"address"}],
		"outputs":[]},
	{"type":"function","name":"closePoll","stateMutability":"nonpayable",
		"inputs":[{"name":"_pollId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"extendPoll","stateMutability":"nonpayable",
		"inputs":[{"name":"_pollId","type":"uint256"},{"name":"_additionalTime","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"setDelegate","stateMutability":"nonpayable",
		"inputs":[{"name":"_delegate","type":"address"}],"outputs":[]},
	{"type":"function","name":"removeDelegate","stateMutability":"nonpayable",
		"inputs":[],"outputs":[]},
	{"type":"function","name":"getPoll","stateMutability":"view",
		"inputs":[{"name":"_pollId","type":"uint256"}],
		"outputs":[{"name":"","type":"tuple","components":[
			{"name":"id","type":"uint256"},
			{"name":"question","type":"string"},
			{"name":"options","type":"string[]"},
			{"name":"creator","type":"address"},
			{"name":"createdAt","type":"uint256"},
			{"name":"endTime","type":"uint256"},
			{"name":"status","type":"uint8"},
			{"name":"pollType","type":"uint8"},
			{"name":"category","type":"uint8"},
			{"name":"minParticipation","type":"uint256"},
			{"name":"totalVotes","type":"uint256"},
			{"name":"totalWeight","type":"uint256"},
			{"name":"description","type":"string"},
			{"name":"tags","type":"string[]"}]}]},
	{"type":"function","name":"getPollResults","stateMutability":"view",
		"inputs":[{"name":"_pollId","type":"uint256"}],
		"outputs":[{"name":"votes","type":"uint256[]"},{"name":"totalVotes","type":"uint256"},{"name":"totalWeight","type":"uint256"}]},
	{"type":"function","name":"getPollsByCategory","stateMutability":"view",
		"inputs":[{"name":"_category","type":"uint8"}],
		"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getPollsByTag","stateMutability":"view",
		"inputs":[{"name":"_tag","type":"string"}],
		"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"hasUserVoted","stateMutability":"view",
		"inputs":[{"name":"_pollId","type":"uint256"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getUserCreatedPolls","stateMutability":"view",
		"inputs":[{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getUserVotedPolls","stateMutability":"view",
		"inputs":[{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getUserStats","stateMutability":"view",
		"inputs":[{"name":"_user","type":"address"}],
		"outputs":[{"name":"pollsCreated","type":"uint256"},{"name":"pollsVoted","type":"uint256"},{"name":"totalVotingWeight","type":"uint256"}]},
	{"type":"function","name":"getDelegators","stateMutability":"view",
		"inputs":[{"name":"_delegate","type":"address"}],
		"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getDelegate","stateMutability":"view",
		"inputs":[{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"isPollActive","stateMutability":"view",
		"inputs":[{"name":"_pollId","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getTotalVotes","stateMutability":"view",
		"inputs":[{"name":"_pollId","type":"uint256"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getActivePollsCount","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"pollCount","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"PollCreated","anonymous":false,
		"inputs":[
			{"name":"pollId","type":"uint256","indexed":true},
			{"name":"creator","type":"address","indexed":true},
			{"name":"question","type":"string","indexed":false},
			{"name":"pollType","type":"uint8","indexed":false},
			{"name":"category","type":"uint8","indexed":false},
			{"name":"endTime","type":"uint256","indexed":false},
			{"name":"tags","type":"string[]","indexed":false}]},
	{"type":"event","name":"VoteCast","anonymous":false,
		"inputs":[
			{"name":"pollId","type":"uint256","indexed":true},
			{"name":"voter","type":"address","indexed":true},
			{"name":"optionIndex","type":"uint256","indexed":false},
			{"name":"weight","type":"uint256","indexed":false}]},
	{"type":"event","name":"PollStatusChanged","anonymous":false,
		"inputs":[
			{"name":"pollId","type":"uint256","indexed":true},
			{"name":"newStatus","type":"uint8","indexed":false}]},
	{"type":"event","name":"DelegateSet","anonymous":false,
		"inputs":[
			{"name":"delegator","type":"address","indexed":true},
			{"name":"delegate","type":"address","indexed":true}]},
	{"type":"event","name":"DelegateRemoved","anonymous":false,
		"inputs":[
			{"name":"delegator","type":"address","indexed":true},
			{"name":"delegate","type":"address","indexed":true}]}
]`

const tokenABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view",
		"inputs":[{"name":"account","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getVotingPower","stateMutability":"view",
		"inputs":[{"name":"user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"name","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint8"}]}
]`
