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
	"os"
	"path/filepath"
)

// quarantineStage holds the paths of the staged source and signature
// copies inside the quarantine directory.
type quarantineStage struct {
	sourcePath    string
	signaturePath string
}

// stageQuarantine copies the already-read source content and signature
// bytes into the quarantine directory, creating it if needed. The staged
// copies record exactly the bytes the trust decision was made over:
// rejected inputs stay behind for inspection, accepted ones are cleaned
// up after the copy commits.
func stageQuarantine(ctx context.Context, quarantineDir, sourcePath, signaturePath string, content, signature []byte) (quarantineStage, error) {
	if err := os.MkdirAll(quarantineDir, 0700); err != nil {
		return quarantineStage{}, newGateErrorWithPath(ErrTypeWrite, quarantineDir, "creating quarantine directory", err)
	}

	stage := quarantineStage{
		sourcePath:    filepath.Join(quarantineDir, filepath.Base(sourcePath)),
		signaturePath: filepath.Join(quarantineDir, filepath.Base(signaturePath)),
	}

	if _, err := atomicReplace(ctx, stage.sourcePath, content); err != nil {
		return quarantineStage{}, err
	}
	if _, err := atomicReplace(ctx, stage.signaturePath, signature); err != nil {
		return quarantineStage{}, err
	}

	return stage, nil
}

// cleanup removes the staged files. Best effort: the gate result does not
// depend on it, so errors are reported to the caller for logging only.
func (s quarantineStage) cleanup() error {
	errSource := os.Remove(s.sourcePath)
	errSig := os.Remove(s.signaturePath)
	if errSource != nil {
		return errSource
	}
	return errSig
}
