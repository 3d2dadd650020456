// Copyright 2026 The pgp-cp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trust defines the trust decision produced by signature
// verification providers.
//
// A Decision distinguishes three outcomes that must never be conflated:
// the provider proved the signature chains to a trusted identity
// (Trusted), the provider ran and explicitly determined it does not
// (Untrusted), and the provider could not complete verification at all
// (Error). Treating "couldn't prove" as "proven bad", or the other way
// around, is a security bug.
package trust

import "fmt"

// Verdict is the discriminant of a Decision.
type Verdict int

const (
	// VerdictError means verification could not run to completion
	// (malformed signature, unreadable keyring, provider failure).
	VerdictError Verdict = iota
	// VerdictUntrusted means verification ran and explicitly determined
	// the signature does not chain to a trusted identity.
	VerdictUntrusted
	// VerdictTrusted means the signature verified against the trust anchor.
	VerdictTrusted
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictTrusted:
		return "trusted"
	case VerdictUntrusted:
		return "untrusted"
	case VerdictError:
		return "verification-error"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a single verification attempt.
//
// Decisions are produced fresh for every invocation and must never be
// cached across runs: keys and trust anchors may change between runs.
type Decision struct {
	// Verdict discriminates the outcome.
	Verdict Verdict

	// Signer is the identity of the signer when Verdict is VerdictTrusted
	// (a user ID for PGP signatures, a key fingerprint for raw keys).
	Signer string

	// KeyID identifies the signing key when known.
	KeyID string

	// Reason explains the decision when Verdict is VerdictUntrusted.
	Reason string

	// Cause is the underlying error when Verdict is VerdictError.
	Cause error
}

// Trusted returns a trusted decision for the given signer identity and key ID.
func Trusted(signer, keyID string) Decision {
	return Decision{Verdict: VerdictTrusted, Signer: signer, KeyID: keyID}
}

// Untrusted returns an untrusted decision with the given reason.
func Untrusted(reason string) Decision {
	return Decision{Verdict: VerdictUntrusted, Reason: reason}
}

// Error returns an error decision wrapping the given cause.
func Error(cause error) Decision {
	return Decision{Verdict: VerdictError, Cause: cause}
}

// String renders the decision for status lines and logs.
func (d Decision) String() string {
	switch d.Verdict {
	case VerdictTrusted:
		if d.KeyID != "" {
			return fmt.Sprintf("trusted (signer %q, key %s)", d.Signer, d.KeyID)
		}
		return fmt.Sprintf("trusted (signer %q)", d.Signer)
	case VerdictUntrusted:
		return fmt.Sprintf("untrusted: %s", d.Reason)
	case VerdictError:
		return fmt.Sprintf("verification error: %v", d.Cause)
	default:
		return "unknown decision"
	}
}
