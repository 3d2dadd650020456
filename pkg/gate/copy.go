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

// renameFile performs the commit step of the atomic replace. It is a
// variable so tests can inject rename failures.
var renameFile = os.Rename

// validateDestination checks that the destination path can receive an
// atomic replace: the parent directory must exist and be a directory, and
// the destination itself must not be a directory. Violations are config
// errors, distinct from I/O failures.
func validateDestination(destPath string) error {
	if destPath == "" {
		return newGateError(ErrTypeConfig, "destination path is required", nil)
	}

	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		return newGateErrorWithPath(ErrTypeConfig, destPath, "destination is a directory", nil)
	}

	dir := filepath.Dir(destPath)
	info, err := os.Stat(dir)
	if err != nil {
		return newGateErrorWithPath(ErrTypeConfig, dir, "destination directory does not exist", err)
	}
	if !info.IsDir() {
		return newGateErrorWithPath(ErrTypeConfig, dir, "destination parent is not a directory", nil)
	}
	return nil
}

// atomicReplace writes content to a temporary file in the destination's
// directory, makes it durable, and renames it into place. The destination
// transitions directly from its previous complete content to the new
// complete content; no reader can observe an intermediate state.
//
// On every non-commit path, including cancellation via ctx, the temporary
// file is removed and the previous destination (if any) is untouched.
func atomicReplace(ctx context.Context, destPath string, content []byte) (int64, error) {
	dir := filepath.Dir(destPath)

	tmp, err := os.CreateTemp(dir, ".pgp-cp-*.tmp")
	if err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, dir, "creating temporary file", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := tmp.Write(content)
	if err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, tmp.Name(), "writing temporary file", err)
	}

	if err := tmp.Sync(); err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, tmp.Name(), "syncing temporary file", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, tmp.Name(), "closing temporary file", err)
	}

	// Last cancellation point: once renamed, the copy has happened.
	if err := ctx.Err(); err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, destPath, "copy canceled before commit", err)
	}

	if err := renameFile(tmp.Name(), destPath); err != nil {
		return 0, newGateErrorWithPath(ErrTypeWrite, destPath, "renaming into place", err)
	}
	committed = true

	// Make the rename itself durable. Not all platforms support syncing
	// a directory, so failures here are not fatal.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return int64(n), nil
}
