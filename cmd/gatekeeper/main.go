// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// gatekeeper is a local, scriptable front end to the boundary package
// for operators and CI pipelines that validate a container runtime
// configuration without going through the C-ABI.
//
// Usage:
//
//	gatekeeper [flags] [config.json]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/vordr-project/gatekeeper/audit"
	"github.com/vordr-project/gatekeeper/boundary"
	"github.com/vordr-project/gatekeeper/parser"
	"github.com/vordr-project/gatekeeper/policy"
	"github.com/vordr-project/gatekeeper/profileconfig"
	"github.com/vordr-project/gatekeeper/report"
)

// exit codes: 0 valid, 1 rejection or parse failure, 2 CLI usage error.
const (
	exitValid  = 0
	exitReject = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	flagSet := pflag.NewFlagSet("gatekeeper", pflag.ContinueOnError)
	profileName := flagSet.String("profile", "", "named policy profile to apply before validation")
	profileFile := flagSet.String("profile-file", "", "YAML file of additional profiles, merged over the built-in set")
	jsonOutput := flagSet.Bool("json", false, "print the verdict as a JSON line instead of text")
	sanitise := flagSet.Bool("sanitise", false, "run sanitise_config semantics instead of validation")
	auditPath := flagSet.String("audit", "", "append a CBOR audit entry for this call to the given file")
	explain := flagSet.Bool("explain", false, "print every security predicate clause, not just the first failure")
	showVersion := flagSet.Bool("version", false, "print the module version and exit")
	verbose := flagSet.Bool("verbose", false, "enable debug logging")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitValid
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, boundary.Version())
		return exitValid
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(level)

	input, err := readInput(flagSet.Args(), stdin)
	if err != nil {
		logger.Error("failed to read configuration input", "error", err)
		return exitUsage
	}

	if len(input) > parser.MaxJSON {
		logger.Warn("input exceeds size limit",
			"size", humanize.Bytes(uint64(len(input))),
			"limit", humanize.Bytes(uint64(parser.MaxJSON)))
	}

	if *sanitise {
		return runSanitise(input, stdout, logger)
	}

	profile, err := resolveProfile(*profileName, *profileFile)
	if err != nil {
		logger.Error("failed to resolve profile", "error", err)
		return exitUsage
	}

	if *explain {
		return runExplain(input, profile, stdout)
	}

	code, message := verify(input, profile)

	if *auditPath != "" {
		if err := appendAudit(*auditPath, input, policy.Verdict(code), message); err != nil {
			logger.Error("failed to append audit entry", "error", err)
		}
	}

	printVerdict(stdout, code, message, *jsonOutput)

	if code == int(policy.Valid) {
		return exitValid
	}
	return exitReject
}

// runExplain prints every security predicate clause for input's
// hardened configuration, rather than just the first violation.
func runExplain(input []byte, profile *profileconfig.Profile, stdout io.Writer) int {
	result := parser.ParseUnhardened(input)
	if result.Status != parser.OK {
		fmt.Fprintf(stdout, "[FAIL] parse: %s\n", boundary.GetErrorMessage(int(policy.ParseError)))
		return exitReject
	}

	cfg := result.Config
	if profile != nil {
		cfg = profile.Apply(cfg)
	}
	cfg = policy.Harden(cfg)

	results := report.Explain(cfg)
	report.Print(stdout, results)

	if report.HasFailure(results) {
		return exitReject
	}
	return exitValid
}

// readInput reads the configuration from positionalArgs[0] if given,
// otherwise from stdin.
func readInput(positionalArgs []string, stdin io.Reader) ([]byte, error) {
	if len(positionalArgs) > 0 {
		return os.ReadFile(positionalArgs[0])
	}
	return io.ReadAll(stdin)
}

// resolveProfile builds the default profile set, merges an optional
// override file, and resolves name if non-empty. A nil profile means
// no overrides apply.
func resolveProfile(name, overrideFile string) (*profileconfig.Profile, error) {
	if name == "" {
		return nil, nil
	}

	set := profileconfig.DefaultProfileSet()
	if overrideFile != "" {
		if err := set.MergeFile(overrideFile); err != nil {
			return nil, err
		}
	}
	return set.Resolve(name)
}

// verify runs the parse/apply-profile/harden/validate pipeline
// directly (rather than through the boundary package) when a profile
// is present, since boundary has no seam for pre-hardening overrides.
// With no profile it defers to boundary.VerifyJSONConfig so the CLI's
// default path exercises the same code the C-ABI does.
func verify(input []byte, profile *profileconfig.Profile) (code int, message string) {
	if profile == nil {
		code = boundary.VerifyJSONConfig(input)
		return code, boundary.GetErrorMessage(code)
	}

	result := parser.ParseUnhardened(input)
	if result.Status != parser.OK {
		code = int(policy.ParseError)
		return code, boundary.GetErrorMessage(code)
	}

	cfg := profile.Apply(result.Config)
	cfg = policy.Harden(cfg)
	code = int(policy.Validate(cfg))
	return code, boundary.GetErrorMessage(code)
}

func runSanitise(input []byte, stdout io.Writer, logger *slog.Logger) int {
	out := make([]byte, len(input))
	n := boundary.SanitiseConfig(input, out)
	if n < 0 {
		message := boundary.GetErrorMessage(-n)
		logger.Error("sanitise_config failed", "code", n, "message", message)
		fmt.Fprintln(stdout, n)
		return exitReject
	}
	fmt.Fprintln(stdout, n)
	return exitValid
}

func appendAudit(path string, input []byte, verdict policy.Verdict, message string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	entry := audit.Record(input, verdict, message, time.Now())
	if err := audit.WriteEntry(file, entry); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

func printVerdict(w io.Writer, code int, message string, asJSON bool) {
	if !asJSON {
		fmt.Fprintf(w, "%s: %s\n", policy.Verdict(code), message)
		return
	}

	line := struct {
		Verdict int    `json:"verdict"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}{
		Verdict: code,
		Name:    policy.Verdict(code).String(),
		Message: message,
	}
	encoded, err := json.Marshal(line)
	if err != nil {
		fmt.Fprintf(w, `{"verdict":%d,"name":"unknown","message":"internal error encoding verdict"}`+"\n", code)
		return
	}
	fmt.Fprintln(w, string(encoded))
}
