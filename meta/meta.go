// meta/meta.go
package meta

// START_CARDS defines how many cards each player is dealt.
const START_CARDS = 7

// SAMPLES_PER_EPOCH defines the number of SARSA samples per training epoch.
const SAMPLES_PER_EPOCH = 100000

// TEST_GAMES defines the number of held-out test games per epoch.
const TEST_GAMES = 1000

// EPSILON defines the chance of a random action under the learned policy.
const EPSILON = 0.3

// LEARNING_RATE defines the initial SARSA step size.
const LEARNING_RATE = 0.99

// LEARNING_RATE_DECAY defines the per-epoch learning rate decay factor.
const LEARNING_RATE_DECAY = 0.95

// LAMBDA defines the eligibility-trace decay factor.
const LAMBDA = 0.9

// MAX_TURNS caps a single game before the driver gives up.
const MAX_TURNS = 10000
