package logger

import "testing"

func TestHelpersUsableBeforeInit(t *testing.T) {
	if Logger == nil {
		t.Fatal("Logger is nil before Init")
	}
	// Must not panic when called by a package that logs before main runs Init.
	Debug("debug before init")
	Info("info before init")
	Warn("warn before init")
	Error("error before init")
}

func TestInitReplacesLogger(t *testing.T) {
	before := Logger
	Init()
	if Logger == nil || Logger == before {
		t.Fatal("Init did not install a configured logger")
	}
}
