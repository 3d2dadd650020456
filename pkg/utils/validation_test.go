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

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing file", file, false},
		{"directory", tmpDir, true},
		{"missing", filepath.Join(tmpDir, "missing"), true},
		{"empty path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileExists("test path", tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileExists(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFolderExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ValidateFolderExists("dir", tmpDir); err != nil {
		t.Errorf("Expected no error for directory, got: %v", err)
	}
	if err := ValidateFolderExists("dir", file); err == nil {
		t.Error("Expected error for file, got nil")
	}
}

func TestValidateOptionalFile(t *testing.T) {
	if err := ValidateOptionalFile("optional", ""); err != nil {
		t.Errorf("Expected no error for empty optional path, got: %v", err)
	}
	if err := ValidateOptionalFile("optional", "/nonexistent/file"); err == nil {
		t.Error("Expected error for missing optional file, got nil")
	}
}
