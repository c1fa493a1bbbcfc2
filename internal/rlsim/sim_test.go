package rlsim

import (
	"math"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{RewardWeight: 1, LearningRate: 0.1, Episodes: 100}, false},
		{"zero episodes", Params{RewardWeight: 1, LearningRate: 0.1, Episodes: 0}, true},
		{"too many episodes", Params{RewardWeight: 1, LearningRate: 0.1, Episodes: MaxEpisodes + 1}, true},
		{"zero learning rate", Params{RewardWeight: 1, LearningRate: 0, Episodes: 10}, true},
		{"negative learning rate", Params{RewardWeight: 1, LearningRate: -0.5, Episodes: 10}, true},
		{"nan learning rate", Params{RewardWeight: 1, LearningRate: math.NaN(), Episodes: 10}, true},
		{"inf reward weight", Params{RewardWeight: math.Inf(1), LearningRate: 0.1, Episodes: 10}, true},
		{"negative reward weight allowed", Params{RewardWeight: -1, LearningRate: 0.1, Episodes: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSimulateShape(t *testing.T) {
	result, err := Simulate(Params{RewardWeight: 1, LearningRate: 0.1, Episodes: 50}, testRNG())
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	if len(result.EpisodeRewards) != 50 {
		t.Errorf("got %d episode rewards, want 50", len(result.EpisodeRewards))
	}
	for i, r := range result.EpisodeRewards {
		if r != 0 && r != 1 {
			t.Errorf("reward[%d] = %v, want 0 or 1", i, r)
		}
	}

	if len(result.TokenDistributions) != len(Vocab) {
		t.Fatalf("got %d token distributions, want %d", len(result.TokenDistributions), len(Vocab))
	}
	sum := 0.0
	for i, d := range result.TokenDistributions {
		if d.Token != Vocab[i] {
			t.Errorf("distribution[%d].Token = %q, want %q", i, d.Token, Vocab[i])
		}
		if d.Probability < 0 || d.Probability > 1 {
			t.Errorf("probability for %q = %v, out of range", d.Token, d.Probability)
		}
		sum += d.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
}

func TestSimulateConvergesTowardRewardedToken(t *testing.T) {
	result, err := Simulate(Params{RewardWeight: 1, LearningRate: 0.5, Episodes: 5000}, testRNG())
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	probC := result.TokenDistributions[rewardedAction].Probability
	for i, d := range result.TokenDistributions {
		if i == rewardedAction {
			continue
		}
		if d.Probability >= probC {
			t.Errorf("P(%s)=%v >= P(C)=%v after training", d.Token, d.Probability, probC)
		}
	}
	if probC < 0.5 {
		t.Errorf("P(C) = %v after 5000 episodes, want majority", probC)
	}
}

func TestSimulateDeterministicWithSeed(t *testing.T) {
	p := Params{RewardWeight: 1, LearningRate: 0.1, Episodes: 200}

	a, err := Simulate(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	b, err := Simulate(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	for i := range a.EpisodeRewards {
		if a.EpisodeRewards[i] != b.EpisodeRewards[i] {
			t.Fatalf("reward trace diverged at episode %d", i)
		}
	}
	for i := range a.TokenDistributions {
		if a.TokenDistributions[i].Probability != b.TokenDistributions[i].Probability {
			t.Fatalf("final distribution diverged for token %s", Vocab[i])
		}
	}
}

func TestSimulateZeroRewardWeightLeavesUniformPolicy(t *testing.T) {
	result, err := Simulate(Params{RewardWeight: 0, LearningRate: 0.5, Episodes: 100}, testRNG())
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	for _, d := range result.TokenDistributions {
		if math.Abs(d.Probability-0.25) > 1e-9 {
			t.Errorf("P(%s) = %v, want uniform 0.25", d.Token, d.Probability)
		}
	}
}

func TestSoftmaxStability(t *testing.T) {
	// Large θ values must not overflow to NaN.
	probs := softmax([]float64{1000, 0, 0, 0})
	for i, p := range probs {
		if math.IsNaN(p) {
			t.Fatalf("probs[%d] is NaN", i)
		}
	}
	if probs[0] < 0.999 {
		t.Errorf("probs[0] = %v, want ~1", probs[0])
	}
}
