// Package rlsim implements the toy policy-gradient demo: a REINFORCE update
// over a four-token vocabulary where exactly one token is rewarded. It backs
// the demo web app scaffolded by "feynman create demo" and the API served by
// "feynman serve".
package rlsim

import (
	"fmt"
	"math"
	"math/rand"
)

// Vocab is the fixed demo vocabulary.
var Vocab = []string{"A", "B", "C", "D"}

// rewardedAction is the index of the only rewarded token ("C").
const rewardedAction = 2

// MaxEpisodes bounds a single simulation request.
const MaxEpisodes = 100000

// Params configures one simulation.
type Params struct {
	RewardWeight float64 `json:"reward_weight" yaml:"reward_weight"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	Episodes     int     `json:"episodes" yaml:"episodes"`
}

// Validate rejects parameter combinations that would hang or produce NaN
// policies.
func (p Params) Validate() error {
	if p.Episodes < 1 || p.Episodes > MaxEpisodes {
		return fmt.Errorf("episodes must be between 1 and %d, got %d", MaxEpisodes, p.Episodes)
	}
	if p.LearningRate <= 0 || math.IsNaN(p.LearningRate) || math.IsInf(p.LearningRate, 0) {
		return fmt.Errorf("learning_rate must be a positive finite number, got %v", p.LearningRate)
	}
	if math.IsNaN(p.RewardWeight) || math.IsInf(p.RewardWeight, 0) {
		return fmt.Errorf("reward_weight must be finite, got %v", p.RewardWeight)
	}
	return nil
}

// TokenProbability is one token's share of the final policy.
type TokenProbability struct {
	Token       string  `json:"token"`
	Probability float64 `json:"probability"`
}

// Result holds the reward trace and the converged policy.
type Result struct {
	EpisodeRewards     []float64          `json:"episode_rewards"`
	TokenDistributions []TokenProbability `json:"token_distributions"`
}

// Simulate runs the policy-gradient loop from a zeroed parameter vector.
// Each episode samples one token from the softmax policy, scores it, and
// applies the REINFORCE update θ += lr·rw·r·(onehot − probs). rng makes the
// run deterministic under test.
func Simulate(p Params, rng *rand.Rand) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	theta := make([]float64, len(Vocab))
	rewards := make([]float64, 0, p.Episodes)

	for ep := 0; ep < p.Episodes; ep++ {
		probs := softmax(theta)
		action := sample(probs, rng)

		r := 0.0
		if action == rewardedAction {
			r = 1.0
		}
		rewards = append(rewards, r)

		step := p.LearningRate * p.RewardWeight * r
		for i := range theta {
			grad := -probs[i]
			if i == action {
				grad = 1 - probs[i]
			}
			theta[i] += step * grad
		}
	}

	final := softmax(theta)
	dists := make([]TokenProbability, len(Vocab))
	for i, tok := range Vocab {
		dists[i] = TokenProbability{Token: tok, Probability: final[i]}
	}

	return &Result{
		EpisodeRewards:     rewards,
		TokenDistributions: dists,
	}, nil
}

// softmax is computed with the max subtracted so large θ values don't
// overflow exp.
func softmax(theta []float64) []float64 {
	maxv := theta[0]
	for _, v := range theta[1:] {
		if v > maxv {
			maxv = v
		}
	}

	out := make([]float64, len(theta))
	sum := 0.0
	for i, v := range theta {
		out[i] = math.Exp(v - maxv)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// sample draws an index from the categorical distribution probs.
func sample(probs []float64, rng *rand.Rand) int {
	u := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if u < acc {
			return i
		}
	}
	// Float rounding can leave acc fractionally below 1.
	return len(probs) - 1
}
