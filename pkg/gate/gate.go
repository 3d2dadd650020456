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

// Package gate implements the verified copy gate: a file is copied to its
// destination only when a detached signature verifies against a trusted
// keyring, and the destination write is an atomic replace.
package gate

import (
	"context"

	"github.com/Doctor-love/pgp-cp/pkg/hashing"
	"github.com/Doctor-love/pgp-cp/pkg/logging"
	"github.com/Doctor-love/pgp-cp/pkg/trust"
	"github.com/Doctor-love/pgp-cp/pkg/verify"
)

// Options configures a Gate.
type Options struct {
	// Verifier is the verification provider holding the trust anchor.
	// Required.
	Verifier verify.SignatureVerifier

	// Logger receives diagnostic output. Defaults to the package default.
	Logger logging.Logger

	// DigestAlgorithm selects the bookkeeping digest ("sha256" or
	// "blake2b"). Empty selects SHA-256.
	DigestAlgorithm string

	// QuarantineDir, when set, stages the source and signature into this
	// directory before verification, preserving rejected inputs for
	// inspection.
	QuarantineDir string
}

// Gate copies a file to a destination only on a trusted verification
// decision. A Gate holds no per-invocation state and is safe to reuse.
type Gate struct {
	verifier        verify.SignatureVerifier
	logger          logging.Logger
	digestAlgorithm string
	quarantineDir   string
}

// New creates a Gate. The digest algorithm is validated eagerly so
// configuration problems surface before any copy is attempted.
func New(opts Options) (*Gate, error) {
	if opts.Verifier == nil {
		return nil, newGateError(ErrTypeConfig, "a verification provider is required", nil)
	}
	if _, err := hashing.NewEngine(opts.DigestAlgorithm); err != nil {
		return nil, newGateError(ErrTypeConfig, "invalid digest algorithm", err)
	}

	return &Gate{
		verifier:        opts.Verifier,
		logger:          logging.EnsureLogger(opts.Logger),
		digestAlgorithm: opts.DigestAlgorithm,
		quarantineDir:   opts.QuarantineDir,
	}, nil
}

// Copy reads the source and its detached signature, asks the provider for
// a trust decision, and on a trusted decision atomically replaces the
// destination with the source content.
//
// On any other outcome the destination is untouched. The returned Result
// discriminates the outcome; when it is not StatusCopied, the returned
// error is a *RejectionError or *GateError carrying the reason.
//
// Copy is idempotent: repeating it with identical inputs leaves the
// destination with identical content.
func (g *Gate) Copy(ctx context.Context, sourcePath, signaturePath, destinationPath string) (Result, error) {
	log := g.logger.WithFields(map[string]interface{}{
		"source":      sourcePath,
		"destination": destinationPath,
	})

	artifact, err := readArtifact(sourcePath, g.digestAlgorithm)
	if err != nil {
		return failed(err), err
	}
	log.Debug("read source artifact (%d bytes, %s)", len(artifact.content), artifact.digest)

	signature, err := readSignature(signaturePath)
	if err != nil {
		return failed(err), err
	}

	var stage quarantineStage
	staged := false
	if g.quarantineDir != "" {
		stage, err = stageQuarantine(ctx, g.quarantineDir, sourcePath, signaturePath, artifact.content, signature)
		if err != nil {
			return failed(err), err
		}
		staged = true
		log.Debug("staged source and signature in quarantine %s", g.quarantineDir)
	}

	// The decision is made fresh on every call; trust is never cached.
	decision := g.verifier.Verify(ctx, artifact.content, signature)
	switch decision.Verdict {
	case trust.VerdictUntrusted:
		// Staged files stay in quarantine for inspection.
		log.Warn("rejecting copy: %s", decision)
		rejErr := &RejectionError{Decision: decision}
		return Result{Status: StatusRejected, Decision: decision, Err: rejErr}, rejErr
	case trust.VerdictError:
		gateErr := newGateError(ErrTypeVerification, "verification could not complete", decision.Cause)
		log.Error("%v", gateErr)
		return Result{Status: StatusFailed, Decision: decision, Err: gateErr}, gateErr
	case trust.VerdictTrusted:
		log.Info("signature verified: %s", decision)
	default:
		gateErr := newGateError(ErrTypeVerification, "provider returned an unknown verdict", nil)
		return failed(gateErr), gateErr
	}

	if err := validateDestination(destinationPath); err != nil {
		return failed(err), err
	}

	written, err := atomicReplace(ctx, destinationPath, artifact.content)
	if err != nil {
		return Result{Status: StatusFailed, Decision: decision, Err: err}, err
	}

	if staged {
		if err := stage.cleanup(); err != nil {
			log.Warn("failed to clean up quarantine files: %v", err)
		}
	}

	log.Info("copied %d bytes to %s", written, destinationPath)
	return Result{
		Status:       StatusCopied,
		Destination:  destinationPath,
		BytesWritten: written,
		Digest:       artifact.digest,
		Decision:     decision,
	}, nil
}

func failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}
