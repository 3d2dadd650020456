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

package gate

import (
	"fmt"

	"github.com/Doctor-love/pgp-cp/pkg/hashing"
	"github.com/Doctor-love/pgp-cp/pkg/trust"
)

// Status discriminates the outcome of a gate copy.
type Status int

const (
	// StatusFailed means the copy did not complete for a reason other
	// than a trust rejection (read, verification, write, or config error).
	StatusFailed Status = iota
	// StatusRejected means verification ran and refused the signature.
	StatusRejected
	// StatusCopied means the destination now holds the source content.
	StatusCopied
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single gate copy invocation.
//
// Exactly one of the three shapes applies:
//   - StatusCopied: Destination, BytesWritten and Digest are set, and
//     Decision holds the trusted decision.
//   - StatusRejected: Decision holds the untrusted decision.
//   - StatusFailed: Err holds the GateError describing the failure.
type Result struct {
	// Status discriminates the outcome.
	Status Status

	// Destination is the destination path on StatusCopied.
	Destination string

	// BytesWritten is the number of bytes written on StatusCopied.
	BytesWritten int64

	// Digest is the content digest of the copied artifact.
	Digest hashing.Digest

	// Decision is the provider's trust decision, when verification ran.
	Decision trust.Decision

	// Err describes the failure on StatusFailed.
	Err error
}

// Message renders a one-line human-readable status for the CLI.
func (r Result) Message() string {
	switch r.Status {
	case StatusCopied:
		return fmt.Sprintf("copied %d bytes to %s (%s, signer %q)",
			r.BytesWritten, r.Destination, r.Digest, r.Decision.Signer)
	case StatusRejected:
		return fmt.Sprintf("rejected: %s", r.Decision)
	case StatusFailed:
		return fmt.Sprintf("failed: %v", r.Err)
	default:
		return "unknown result"
	}
}
