// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"

	"github.com/vordr-project/gatekeeper/policy"
)

// Result is the outcome of checking one clause of the security
// predicate against a configuration.
type Result struct {
	Name    string
	Passed  bool
	Message string
}

// Explain evaluates every clause of the security predicate against
// cfg, in the same order policy.Validate does, and returns one Result
// per clause plus a final summary Result naming the overall verdict.
// Unlike Validate, which stops at the first failing clause, Explain
// always evaluates all of them, so a caller can see every violation a
// configuration has, not just the first.
func Explain(cfg policy.Config) []Result {
	if cfg.IsPrivileged {
		return []Result{
			{Name: "privileged", Passed: true, Message: "is_privileged is set; all other checks bypassed"},
			{Name: "verdict", Passed: true, Message: policy.Valid.String()},
		}
	}

	results := make([]Result, 0, 5)

	if cfg.Capabilities.Has(policy.SYS_ADMIN) {
		results = append(results, Result{Name: "capabilities", Passed: false, Message: "SYS_ADMIN is present without privileged mode"})
	} else {
		results = append(results, Result{Name: "capabilities", Passed: true, Message: "SYS_ADMIN is absent"})
	}

	if cfg.UserID == 0 && !cfg.UserNamespace {
		results = append(results, Result{Name: "user_namespace", Passed: false, Message: "UID 0 without a user namespace"})
	} else {
		results = append(results, Result{Name: "user_namespace", Passed: true, Message: "non-root, or a user namespace is enabled"})
	}

	if cfg.Capabilities.Has(policy.NET_ADMIN) && cfg.NetworkMode == policy.Unprivileged {
		results = append(results, Result{Name: "network_mode", Passed: false, Message: "NET_ADMIN is present under Unprivileged network mode"})
	} else {
		results = append(results, Result{Name: "network_mode", Passed: true, Message: "NET_ADMIN is absent, or network mode is above Unprivileged"})
	}

	if cfg.UserID == 0 && !cfg.NoNewPrivileges && !cfg.UserNamespace {
		results = append(results, Result{Name: "privilege_escalation", Passed: false, Message: "UID 0 without no_new_privileges or a user namespace"})
	} else {
		results = append(results, Result{Name: "privilege_escalation", Passed: true, Message: "no_new_privileges, a user namespace, or non-root"})
	}

	verdict := policy.Validate(cfg)
	results = append(results, Result{Name: "verdict", Passed: verdict == policy.Valid, Message: verdict.String()})

	return results
}

// Print writes results to w, one line per clause, prefixed with a
// pass/fail marker.
func Print(w io.Writer, results []Result) {
	for _, r := range results {
		prefix := "PASS"
		if !r.Passed {
			prefix = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", prefix, r.Name, r.Message)
	}
}

// HasFailure reports whether any clause in results failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
