package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/MyForking/halite3-bot-1/test/bdd/steps"
)

// InitializeScenario wires every feature's step definitions into one
// shared registry, mirroring the collision-avoidance comments a growing
// step library needs once more than one feature file is added.
func InitializeScenario(sc *godog.ScenarioContext) {
	// turn_scenarios.feature — end-to-end per-turn command assertions (S1-S6).
	steps.InitializeTurnScenario(sc)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
