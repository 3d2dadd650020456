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

// Package verify defines the verification provider contract consumed by
// the copy gate.
package verify

import (
	"context"

	"github.com/Doctor-love/pgp-cp/pkg/trust"
)

// SignatureVerifier checks a detached signature over content against a
// trust anchor fixed at construction time.
//
// Implementations must be deterministic for fixed inputs and a fixed
// trust anchor, and must report internal failures as a decision with
// trust.VerdictError rather than as VerdictUntrusted, so callers can
// distinguish "proven bad" from "couldn't prove".
//
// Implementations include the OpenPGP keyring verifier (pkg/verify/pgp)
// and the raw public key verifier (pkg/verify/key).
type SignatureVerifier interface {
	// Verify evaluates the detached signature over content and returns
	// the trust decision. It never mutates its inputs.
	Verify(ctx context.Context, content, signature []byte) trust.Decision
}
