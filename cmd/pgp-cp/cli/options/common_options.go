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

package options

import (
	"github.com/spf13/cobra"
)

// SignatureInputFlags contains the signature path flag shared by all copy
// commands. The signature flag is required.
type SignatureInputFlags struct {
	// SignaturePath specifies the location of the detached signature file.
	SignaturePath string
}

// AddFlags adds the signature input flag to the cobra command.
func (o *SignatureInputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.SignaturePath, "signature", "s", "", "Location of the detached signature file for INPUT. [required]")
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagFilename("signature")
}

// OutputFlags contains the destination path flag shared by all copy
// commands. The output flag is required.
type OutputFlags struct {
	// OutputPath specifies the destination file to create or replace.
	OutputPath string
}

// AddFlags adds the output flag to the cobra command.
func (o *OutputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "Destination file to create or atomically replace. [required]")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagFilename("output")
}

// QuarantineFlags contains the optional quarantine directory flag.
// When set, the input and signature are staged there before verification
// and kept on rejection for later inspection.
type QuarantineFlags struct {
	// QuarantineDir is the directory used to stage inputs during the
	// copy. Empty disables quarantine staging.
	QuarantineDir string
}

// AddFlags adds the quarantine flag to the cobra command.
func (o *QuarantineFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.QuarantineDir, "quarantine", "q", "", "Directory to stage the input and signature in; rejected inputs are kept there.")
	_ = cmd.MarkFlagDirname("quarantine")
}

// DigestFlags contains the digest algorithm flag shared by all copy
// commands.
type DigestFlags struct {
	// DigestAlgorithm selects the content digest recorded for copied
	// files (sha256 or blake2b).
	DigestAlgorithm string
}

// AddFlags adds the digest flag to the cobra command.
func (o *DigestFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.DigestAlgorithm, "digest-algorithm", "sha256", "Digest algorithm recorded for copied content (sha256, blake2b).")
}

// AddAllFlags is a helper to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...Interface) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
