package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitAnalyzer, "exits", "library")
}

func TestAnalyzersContainOsExit(t *testing.T) {
	checks := analyzers()

	assert.Contains(t, checks, OsExitAnalyzer)

	names := make(map[string]bool, len(checks))
	for _, a := range checks {
		assert.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}
	assert.True(t, names["errcheck"])
	assert.True(t, names["SA4006"])
}
