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
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Doctor-love/pgp-cp/pkg/trust"
)

// stubVerifier returns a fixed decision, standing in for a real provider.
type stubVerifier struct {
	decision trust.Decision
	calls    int
}

func (s *stubVerifier) Verify(_ context.Context, _, _ []byte) trust.Decision {
	s.calls++
	return s.decision
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return content
}

func newGate(t *testing.T, opts Options) *Gate {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("Failed to create gate: %v", err)
	}
	return g
}

func TestCopy_TrustedSignature(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice@example.com", "A1B2")}})

	result, err := g.Copy(context.Background(), source, sig, dest)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if result.Status != StatusCopied {
		t.Fatalf("Status = %v, want StatusCopied", result.Status)
	}
	if result.BytesWritten != 9 {
		t.Errorf("BytesWritten = %d, want 9", result.BytesWritten)
	}
	if got := readFile(t, dest); string(got) != "config-v1" {
		t.Errorf("destination content = %q, want config-v1", got)
	}
	if result.Decision.Signer != "alice@example.com" {
		t.Errorf("Decision.Signer = %q, want alice@example.com", result.Decision.Signer)
	}
}

func TestCopy_UntrustedSignerLeavesDestinationAbsent(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Untrusted("signer not in trust anchor")}})

	result, err := g.Copy(context.Background(), source, sig, dest)
	if result.Status != StatusRejected {
		t.Fatalf("Status = %v, want StatusRejected", result.Status)
	}

	var rejErr *RejectionError
	if !errors.As(err, &rejErr) {
		t.Fatalf("error = %v, want *RejectionError", err)
	}
	if rejErr.ExitCode() != 2 {
		t.Errorf("ExitCode = %d, want 2", rejErr.ExitCode())
	}

	// "Did not exist" is a destination state that must be preserved.
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("destination was created despite rejection")
	}
}

func TestCopy_UntrustedLeavesExistingDestinationIntact(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v2"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := writeFile(t, tmpDir, "output", []byte("old-data"))

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Untrusted("nope")}})

	if _, err := g.Copy(context.Background(), source, sig, dest); err == nil {
		t.Fatal("Expected rejection error, got nil")
	}
	if got := readFile(t, dest); string(got) != "old-data" {
		t.Errorf("destination content = %q, want old-data unchanged", got)
	}
}

func TestCopy_VerificationErrorIsNotRejection(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")

	cause := errors.New("keyring unavailable")
	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Error(cause)}})

	result, err := g.Copy(context.Background(), source, sig, dest)
	if result.Status != StatusFailed {
		t.Fatalf("Status = %v, want StatusFailed", result.Status)
	}
	if !IsType(err, ErrTypeVerification) {
		t.Errorf("error = %v, want ErrTypeVerification", err)
	}
	if !errors.Is(err, cause) {
		t.Error("provider cause not preserved in error chain")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("destination was created despite verification error")
	}
}

func TestCopy_OverwritesExistingDestination(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v2"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := writeFile(t, tmpDir, "output", []byte("old-data"))

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	result, err := g.Copy(context.Background(), source, sig, dest)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if result.Status != StatusCopied {
		t.Fatalf("Status = %v, want StatusCopied", result.Status)
	}
	if got := readFile(t, dest); string(got) != "config-v2" {
		t.Errorf("destination content = %q, want config-v2 with no trace of old-data", got)
	}
}

func TestCopy_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")

	verifier := &stubVerifier{decision: trust.Trusted("alice", "A1")}
	g := newGate(t, Options{Verifier: verifier})

	for i := 0; i < 3; i++ {
		if _, err := g.Copy(context.Background(), source, sig, dest); err != nil {
			t.Fatalf("Copy %d failed: %v", i, err)
		}
	}
	if got := readFile(t, dest); string(got) != "config-v1" {
		t.Errorf("destination content = %q after repeated copies, want config-v1", got)
	}
	// Trust must be re-evaluated every time, never cached.
	if verifier.calls != 3 {
		t.Errorf("verifier called %d times, want 3", verifier.calls)
	}
}

func TestCopy_EmptySourceIsValid(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", nil)
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	result, err := g.Copy(context.Background(), source, sig, dest)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if result.BytesWritten != 0 {
		t.Errorf("BytesWritten = %d, want 0", result.BytesWritten)
	}
	if got := readFile(t, dest); len(got) != 0 {
		t.Errorf("destination content = %q, want empty", got)
	}
}

func TestCopy_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))

	verifier := &stubVerifier{decision: trust.Trusted("alice", "A1")}
	g := newGate(t, Options{Verifier: verifier})

	_, err := g.Copy(context.Background(), filepath.Join(tmpDir, "missing"), sig, filepath.Join(tmpDir, "output"))
	if !IsType(err, ErrTypeRead) {
		t.Fatalf("error = %v, want ErrTypeRead", err)
	}
	if verifier.calls != 0 {
		t.Error("verifier was called despite unreadable source")
	}
}

func TestCopy_MissingSignature(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	_, err := g.Copy(context.Background(), source, filepath.Join(tmpDir, "missing.sig"), filepath.Join(tmpDir, "output"))
	if !IsType(err, ErrTypeRead) {
		t.Fatalf("error = %v, want ErrTypeRead", err)
	}
}

func TestCopy_DestinationIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	destDir := filepath.Join(tmpDir, "destdir")
	if err := os.Mkdir(destDir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	_, err := g.Copy(context.Background(), source, sig, destDir)
	if !IsType(err, ErrTypeConfig) {
		t.Fatalf("error = %v, want ErrTypeConfig", err)
	}

	var gateErr *GateError
	if As(err, &gateErr) && gateErr.ExitCode() != 3 {
		t.Errorf("ExitCode = %d, want 3", gateErr.ExitCode())
	}
}

func TestCopy_MissingDestinationDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	_, err := g.Copy(context.Background(), source, sig, filepath.Join(tmpDir, "nonexistent", "output"))
	if !IsType(err, ErrTypeConfig) {
		t.Fatalf("error = %v, want ErrTypeConfig", err)
	}
}

func TestCopy_CanceledContextLeavesDestinationUnchanged(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v2"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := writeFile(t, tmpDir, "output", []byte("old-data"))

	g := newGate(t, Options{Verifier: &stubVerifier{decision: trust.Trusted("alice", "A1")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Copy(ctx, source, sig, dest)
	if !IsType(err, ErrTypeWrite) {
		t.Fatalf("error = %v, want ErrTypeWrite", err)
	}
	if got := readFile(t, dest); string(got) != "old-data" {
		t.Errorf("destination content = %q, want old-data unchanged", got)
	}
	assertNoTempFiles(t, tmpDir)
}

func TestCopy_QuarantineKeepsRejectedInputs(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")
	quarDir := filepath.Join(tmpDir, "quarantine")

	g := newGate(t, Options{
		Verifier:      &stubVerifier{decision: trust.Untrusted("nope")},
		QuarantineDir: quarDir,
	})

	if _, err := g.Copy(context.Background(), source, sig, dest); err == nil {
		t.Fatal("Expected rejection error, got nil")
	}

	// Rejected inputs stay behind for inspection.
	if got := readFile(t, filepath.Join(quarDir, "input")); string(got) != "config-v1" {
		t.Errorf("quarantined source = %q, want config-v1", got)
	}
	if got := readFile(t, filepath.Join(quarDir, "input.sig")); string(got) != "sig" {
		t.Errorf("quarantined signature = %q, want sig", got)
	}
}

func TestCopy_QuarantineCleanedUpOnSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	source := writeFile(t, tmpDir, "input", []byte("config-v1"))
	sig := writeFile(t, tmpDir, "input.sig", []byte("sig"))
	dest := filepath.Join(tmpDir, "output")
	quarDir := filepath.Join(tmpDir, "quarantine")

	g := newGate(t, Options{
		Verifier:      &stubVerifier{decision: trust.Trusted("alice", "A1")},
		QuarantineDir: quarDir,
	})

	if _, err := g.Copy(context.Background(), source, sig, dest); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(quarDir, "input")); !os.IsNotExist(err) {
		t.Error("quarantined source not cleaned up after successful copy")
	}
	if _, err := os.Stat(filepath.Join(quarDir, "input.sig")); !os.IsNotExist(err) {
		t.Error("quarantined signature not cleaned up after successful copy")
	}
	if got := readFile(t, dest); string(got) != "config-v1" {
		t.Errorf("destination content = %q, want config-v1", got)
	}
}

func TestNew_RequiresVerifier(t *testing.T) {
	_, err := New(Options{})
	if !IsType(err, ErrTypeConfig) {
		t.Fatalf("error = %v, want ErrTypeConfig", err)
	}
}

func TestNew_RejectsUnknownDigestAlgorithm(t *testing.T) {
	_, err := New(Options{
		Verifier:        &stubVerifier{decision: trust.Trusted("a", "b")},
		DigestAlgorithm: "md5",
	})
	if !IsType(err, ErrTypeConfig) {
		t.Fatalf("error = %v, want ErrTypeConfig", err)
	}
}

// assertNoTempFiles verifies no gate temp files leaked into dir.
func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, e := range entries {
		if matched, _ := filepath.Match(".pgp-cp-*.tmp", e.Name()); matched {
			t.Errorf("leaked temporary file %s", e.Name())
		}
	}
}
