// Command hashira reconstructs secrets from threshold shares, and deals new shares.
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Vinayak2k03/Hashira/internal/config"
	"github.com/Vinayak2k03/Hashira/pkg/secret"
	"github.com/Vinayak2k03/Hashira/pkg/share"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "recover":
			return cmdRecover(args[1:], out, errOut)
		case "split":
			return cmdSplit(args[1:], out, errOut)
		case "help", "-h", "--help":
			printUsage(out)
			return 0
		}
	}
	return cmdRecover(args, out, errOut)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hashira: exact secret reconstruction from threshold shares")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hashira [recover] [-format text|json|cbor] [-workers N] [-log-level L] [file ...]")
	fmt.Fprintln(w, "  hashira split -secret <int> -k <k> -n <n> [-base <2..36>] [-bits <bits>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - with no file, recover reads input.json")
	fmt.Fprintln(w, "  - the secret is f(0), interpolated from the k shares with the smallest indices")
}

// outcome holds the reconstruction of one document.
type outcome struct {
	result *secret.Result
	err    error
}

func cmdRecover(args []string, out io.Writer, errOut io.Writer) int {
	cfg, err := config.Parse(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(errOut, err)
		return 2
	}
	log, err := cfg.Logger(errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	outcomes := recoverAll(cfg, log)

	status := 0
	for i, file := range cfg.Files {
		o := outcomes[i]
		if o.err != nil {
			log.Error().Err(o.err).Str("file", file).Msg("failed to reconstruct secret")
			status = 1
			continue
		}
		if err := printResult(out, cfg, file, o.result); err != nil {
			log.Error().Err(err).Str("file", file).Msg("failed to print result")
			status = 1
		}
	}
	return status
}

// recoverAll reconstructs every document of cfg.Files, at most cfg.Workers at a time.
// Documents are independent, so one failure does not stop the others.
func recoverAll(cfg *config.Config, log zerolog.Logger) []outcome {
	outcomes := make([]outcome, len(cfg.Files))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, file := range cfg.Files {
		i, file := i, file
		g.Go(func() error {
			fileLog := log.With().Str("file", file).Logger()
			fileLog.Info().Msg("reading shares")
			data, err := os.ReadFile(file)
			if err != nil {
				outcomes[i].err = fmt.Errorf("failed to read file %s: %w", file, err)
				return nil
			}
			outcomes[i].result, outcomes[i].err = secret.ReconstructJSON(data, secret.WithLogger(fileLog))
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

type jsonResult struct {
	File      string `json:"file"`
	Secret    string `json:"secret"`
	Threshold int    `json:"threshold"`
	Digest    string `json:"digest"`
}

func printResult(w io.Writer, cfg *config.Config, file string, r *secret.Result) error {
	switch cfg.Format {
	case config.FormatJSON:
		return json.NewEncoder(w).Encode(jsonResult{
			File:      file,
			Secret:    r.Secret.String(),
			Threshold: r.Threshold,
			Digest:    hex.EncodeToString(r.Digest),
		})
	case config.FormatCBOR:
		data, err := r.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	default:
		var err error
		if len(cfg.Files) == 1 {
			_, err = fmt.Fprintln(w, r.Secret.String())
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", file, r.Secret.String())
		}
		return err
	}
}

func cmdSplit(args []string, out io.Writer, errOut io.Writer) int {
	cfg, err := config.ParseSplit(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(errOut, err)
		return 2
	}
	doc, err := share.Deal(rand.Reader, cfg.Secret, cfg.K, cfg.N, cfg.Base, cfg.Bits)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	data, err := json.Marshal(doc)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	pretty.WriteByte('\n')
	if _, err := pretty.WriteTo(out); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}
