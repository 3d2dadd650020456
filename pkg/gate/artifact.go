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
	"os"

	"github.com/Doctor-love/pgp-cp/pkg/hashing"
)

// sourceArtifact is the content read from the source path, with a digest
// computed for bookkeeping. It is created once per invocation and never
// mutated afterwards.
type sourceArtifact struct {
	path    string
	content []byte
	digest  hashing.Digest
}

// readArtifact reads the source file fully into memory and computes its
// digest. An empty file is a valid artifact.
func readArtifact(path, digestAlgorithm string) (sourceArtifact, error) {
	if err := requireRegularFile("source", path); err != nil {
		return sourceArtifact{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return sourceArtifact{}, newGateErrorWithPath(ErrTypeRead, path, "reading source file", err)
	}

	digest, err := hashing.Sum(digestAlgorithm, content)
	if err != nil {
		// The algorithm is validated at gate construction.
		return sourceArtifact{}, newGateErrorWithPath(ErrTypeRead, path, "hashing source content", err)
	}

	return sourceArtifact{path: path, content: content, digest: digest}, nil
}

// readSignature reads the detached signature bytes. The signature is
// opaque to the gate; only the provider interprets it.
func readSignature(path string) ([]byte, error) {
	if err := requireRegularFile("signature", path); err != nil {
		return nil, err
	}

	signature, err := os.ReadFile(path)
	if err != nil {
		return nil, newGateErrorWithPath(ErrTypeRead, path, "reading signature file", err)
	}
	return signature, nil
}

// requireRegularFile maps missing or non-regular input files to read
// errors before the actual read.
func requireRegularFile(what, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return newGateErrorWithPath(ErrTypeRead, path, fmt.Sprintf("%s file is not readable", what), err)
	}
	if info.IsDir() {
		return newGateErrorWithPath(ErrTypeRead, path, fmt.Sprintf("%s path is a directory, expected file", what), nil)
	}
	return nil
}
