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

	"github.com/Doctor-love/pgp-cp/pkg/gate"
	keyverify "github.com/Doctor-love/pgp-cp/pkg/verify/key"
	"github.com/Doctor-love/pgp-cp/pkg/verify/pgp"
)

// PGPCopyOptions holds the flags for OpenPGP-verified copies.
type PGPCopyOptions struct {
	SignatureInputFlags
	OutputFlags
	QuarantineFlags
	DigestFlags
	KeyringPath    string // --keyring (required)
	RequiredSigner string // --required-signer
}

// AddFlags adds PGP copy flags to the cobra command.
func (o *PGPCopyOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.SignatureInputFlags, &o.OutputFlags, &o.QuarantineFlags, &o.DigestFlags)

	cmd.Flags().StringVarP(&o.KeyringPath, "keyring", "k", "", "Location of the trusted keyring file (armored or binary). [required]")
	_ = cmd.MarkFlagRequired("keyring")
	_ = cmd.MarkFlagFilename("keyring")
	cmd.Flags().StringVar(&o.RequiredSigner, "required-signer", "", "Only trust signatures from this signer (name, email, or hex key ID).")
}

// KeyCopyOptions holds the flags for public-key-verified copies.
type KeyCopyOptions struct {
	SignatureInputFlags
	OutputFlags
	QuarantineFlags
	DigestFlags
	PublicKeyPath string // --public-key (required)
}

// AddFlags adds key copy flags to the cobra command.
func (o *KeyCopyOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.SignatureInputFlags, &o.OutputFlags, &o.QuarantineFlags, &o.DigestFlags)

	cmd.Flags().StringVar(&o.PublicKeyPath, "public-key", "", "Location of the PEM public key paired with the signing key. [required]")
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagFilename("public-key")
}

// ToVerifierConfig converts CLI options to the OpenPGP verifier config.
func (o *PGPCopyOptions) ToVerifierConfig() pgp.VerifierConfig {
	return pgp.VerifierConfig{
		KeyringPath:    o.KeyringPath,
		RequiredSigner: o.RequiredSigner,
	}
}

// ToVerifierConfig converts CLI options to the key verifier config.
func (o *KeyCopyOptions) ToVerifierConfig() keyverify.VerifierConfig {
	return keyverify.VerifierConfig{
		PublicKeyPath: o.PublicKeyPath,
	}
}

// ToGateOptions converts the shared copy flags to gate options. The caller
// fills in the Verifier and Logger.
func (o *PGPCopyOptions) ToGateOptions() gate.Options {
	return gate.Options{
		DigestAlgorithm: o.DigestAlgorithm,
		QuarantineDir:   o.QuarantineDir,
	}
}

// ToGateOptions converts the shared copy flags to gate options. The caller
// fills in the Verifier and Logger.
func (o *KeyCopyOptions) ToGateOptions() gate.Options {
	return gate.Options{
		DigestAlgorithm: o.DigestAlgorithm,
		QuarantineDir:   o.QuarantineDir,
	}
}
