//go:build integration

// Package integration runs the Gherkin features against the wired API.
package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/budgetwise/backend/test/integration/steps"
)

// TestFeatures runs every feature under features/ in order.
//
//	GODOG_TAGS    tag expression, e.g. "@alerts && ~@slow"
//	GODOG_FORMAT  godog formatter, pretty by default
//	GODOG_PATHS   comma separated feature files or directories
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:   envOr("GODOG_FORMAT", "pretty"),
		Paths:    strings.Split(envOr("GODOG_PATHS", "features"), ","),
		Output:   colors.Colored(os.Stdout),
		Tags:     os.Getenv("GODOG_TAGS"),
		Strict:   true,
		TestingT: t,

		// Scenarios share one database, one redis and one clock.
		Concurrency: 1,
	}

	suite := godog.TestSuite{
		Name:                 "budgetwise-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run finished with status %d", status)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
