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

// Package utils provides path validation helpers shared by the
// verification providers and the CLI.
package utils

import (
	"fmt"
	"os"
)

// PathType represents the type of path to validate.
type PathType int

const (
	// PathTypeFile expects a regular file.
	PathTypeFile PathType = iota
	// PathTypeFolder expects a directory.
	PathTypeFolder
	// PathTypeAny accepts either.
	PathTypeAny
)

// ValidatePath checks that path is non-empty, exists, and matches the
// expected type. fieldName names the path in error messages.
func ValidatePath(fieldName, path string, pathType PathType) error {
	if path == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", fieldName, path)
		}
		return fmt.Errorf("checking %s %q: %w", fieldName, path, err)
	}

	switch pathType {
	case PathTypeFile:
		if info.IsDir() {
			return fmt.Errorf("%s %q is a directory, expected file", fieldName, path)
		}
	case PathTypeFolder:
		if !info.IsDir() {
			return fmt.Errorf("%s %q is a file, expected directory", fieldName, path)
		}
	case PathTypeAny:
	}
	return nil
}

// ValidateFileExists validates that path exists and is a regular file.
func ValidateFileExists(fieldName, path string) error {
	return ValidatePath(fieldName, path, PathTypeFile)
}

// ValidateFolderExists validates that path exists and is a directory.
func ValidateFolderExists(fieldName, path string) error {
	return ValidatePath(fieldName, path, PathTypeFolder)
}

// ValidateOptionalFile validates a file path only when it is non-empty.
func ValidateOptionalFile(fieldName, path string) error {
	if path == "" {
		return nil
	}
	return ValidateFileExists(fieldName, path)
}
