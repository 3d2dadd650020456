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

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Doctor-love/pgp-cp/cmd/pgp-cp/cli/options"
	"github.com/Doctor-love/pgp-cp/pkg/gate"
	"github.com/Doctor-love/pgp-cp/pkg/logging"
	"github.com/Doctor-love/pgp-cp/pkg/tracing"
	keyverify "github.com/Doctor-love/pgp-cp/pkg/verify/key"
	"github.com/Doctor-love/pgp-cp/pkg/verify/pgp"
)

// runPGPCopy performs an OpenPGP-verified copy with tracing. Shared by
// NewPGPCopier (explicit subcommand) and Copy (default).
func runPGPCopy(ctx context.Context, o *options.PGPCopyOptions, inputPath string) error {
	attrs := map[string]interface{}{
		"pgp_cp.method":          "pgp",
		"pgp_cp.input":           inputPath,
		"pgp_cp.signature":       o.SignaturePath,
		"pgp_cp.output":          o.OutputPath,
		"pgp_cp.keyring":         o.KeyringPath,
		"pgp_cp.required_signer": o.RequiredSigner,
		"pgp_cp.quarantine":      o.QuarantineDir,
	}
	return tracing.Run(ctx, "Copy", attrs, func(ctx context.Context) error {
		verifier, err := pgp.NewVerifier(o.ToVerifierConfig())
		if err != nil {
			return err
		}

		opts := o.ToGateOptions()
		opts.Verifier = verifier
		opts.Logger = ro.NewObservability().Logger

		g, err := gate.New(opts)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		result, err := g.Copy(ctx, inputPath, o.SignaturePath, o.OutputPath)
		if ro.GetLogLevel() < logging.LevelSilent {
			fmt.Println(result.Message())
		}
		return err
	})
}

// NewPGPCopier creates the pgp subcommand for verified copies. This is the
// default copy method; the keyring plays the role GnuPG's trust database
// plays for gpg --verify.
func NewPGPCopier() *cobra.Command {
	o := &options.PGPCopyOptions{}

	long := `Copy after OpenPGP signature verification (DEFAULT copy method).

Copies the file at INPUT to the destination given via --output, but only
after the detached signature from --signature verifies against a key in
the keyring given via --keyring. The destination is replaced atomically
and is never touched when verification does not succeed.

With --required-signer, a valid signature from any other key in the
keyring is still rejected. With --quarantine, the input and signature are
staged in the given directory first; rejected inputs stay there for
inspection.`

	cmd := &cobra.Command{
		Use:   "pgp [OPTIONS] INPUT",
		Short: "Copy after OpenPGP signature verification.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPGPCopy(cmd.Context(), o, args[0])
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// NewKeyCopier creates the key subcommand for verified copies. This command
// verifies raw detached signatures against a single PEM public key instead
// of an OpenPGP keyring.
func NewKeyCopier() *cobra.Command {
	o := &options.KeyCopyOptions{}

	long := `Copy after raw public key signature verification.

Copies the file at INPUT to the destination given via --output, but only
after the detached signature from --signature verifies against the public
key given via --public-key. The key must be paired with the private key
that produced the signature. The destination is replaced atomically and
is never touched when verification does not succeed.

Note that this method does not tie the signature to an identity, outside
of pairing the keys.`

	cmd := &cobra.Command{
		Use:   "key [OPTIONS] INPUT",
		Short: "Copy after raw public key signature verification.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			attrs := map[string]interface{}{
				"pgp_cp.method":     "key",
				"pgp_cp.input":      inputPath,
				"pgp_cp.signature":  o.SignaturePath,
				"pgp_cp.output":     o.OutputPath,
				"pgp_cp.public_key": o.PublicKeyPath,
				"pgp_cp.quarantine": o.QuarantineDir,
			}
			return tracing.Run(cmd.Context(), "Copy", attrs, func(ctx context.Context) error {
				verifier, err := keyverify.NewVerifier(o.ToVerifierConfig())
				if err != nil {
					return err
				}

				opts := o.ToGateOptions()
				opts.Verifier = verifier
				opts.Logger = ro.NewObservability().Logger

				g, err := gate.New(opts)
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
				defer cancel()

				result, err := g.Copy(ctx, inputPath, o.SignaturePath, o.OutputPath)
				if ro.GetLogLevel() < logging.LevelSilent {
					fmt.Println(result.Message())
				}
				return err
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// Copy creates the copy command with all verification method subcommands.
// It serves as the parent command for the different methods (pgp, key) and
// defaults to OpenPGP verification when no subcommand is specified.
func Copy() *cobra.Command {
	o := &options.PGPCopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy [OPTIONS] INPUT",
		Short: "Copy a file after signature verification.",
		Long: `Copy a file after signature verification.

Given an input file and a detached cryptographic signature for it, this call
checks the signature against a trusted keyring and copies the input to the
destination only when a trusted key produced the signature. The destination
is replaced atomically, so readers see either the old content or the new
content, never a partial file.

By default, OpenPGP verification is used. Specify a method subcommand (pgp,
key) for other verification methods.

Use each subcommand's --help option for details on each mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPGPCopy(cmd.Context(), o, args[0])
		},
	}

	// Register PGP flags on the parent so that
	// `copy INPUT --signature ... --keyring ...` works without specifying
	// the pgp subcommand explicitly.
	o.AddFlags(cmd)

	// Add method subcommands. Each owns its own flags.
	cmd.AddCommand(NewPGPCopier())
	cmd.AddCommand(NewKeyCopier())

	return cmd
}
