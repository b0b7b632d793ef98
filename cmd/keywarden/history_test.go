package main

import (
	"strings"
	"testing"
)

func (tc *testContext) writeStoreConfig() string {
	tc.t.Helper()
	return tc.writeFile("config.yaml", "store:\n  path: "+tc.path("assessments.db")+"\n")
}

func TestF_History_NoStoreConfigured(t *testing.T) {
	newTestContext(t)

	_, err := executeCommand(rootCmd, "history")
	assertError(t, err)
}

func TestF_History_Empty(t *testing.T) {
	tc := newTestContext(t)
	cfgPath := tc.writeStoreConfig()

	out, err := executeCommand(rootCmd, "history", "--config", cfgPath)
	assertNoError(t, err)
	if !strings.Contains(out, "No saved assessments") {
		t.Errorf("output = %q", out)
	}
}

func TestF_History_SaveAndList(t *testing.T) {
	tc := newTestContext(t)
	cfgPath := tc.writeStoreConfig()

	_, err := executeCommand(rootCmd, "hash", "md5", "--save", "--config", cfgPath)
	assertError(t, err) // md5 is non-compliant, the assessment still saves

	resetFlags()
	out, err := executeCommand(rootCmd, "history", "--config", cfgPath)
	assertNoError(t, err)
	if !strings.Contains(out, "md5") || !strings.Contains(out, "non-compliant") {
		t.Errorf("output missing saved assessment:\n%s", out)
	}
}

func TestF_History_SaveWithoutStore(t *testing.T) {
	newTestContext(t)

	_, err := executeCommand(rootCmd, "hash", "sha256", "--save")
	assertError(t, err)
}
