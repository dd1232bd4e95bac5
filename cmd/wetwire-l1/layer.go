package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/constructs/kubectllayer"
	"github.com/lex00/wetwire-l1-go/internal/asset"
	"github.com/lex00/wetwire-l1-go/internal/logging"
)

func newLayerCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Build and publish the kubectl/helm Lambda layer",
		Long: `Layer packages kubectl and helm as a Lambda layer archive. Lambda mounts
the binaries at /opt/kubectl/kubectl and /opt/helm/helm.

Examples:
    wetwire-l1 layer bundle --kubectl bin/kubectl --helm bin/helm -o layer.zip
    wetwire-l1 layer inspect layer.zip
    wetwire-l1 layer publish layer.zip --bucket my-assets`,
	}

	cmd.AddCommand(
		newLayerBundleCmd(opts),
		newLayerInspectCmd(opts),
		newLayerPublishCmd(opts),
	)
	return cmd
}

func newLayerBundleCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		bundle       kubectllayer.BundleOptions
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Build the layer archive from local binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := kubectllayer.Bundle(bundle)
			if err != nil {
				return err
			}
			result := wetwire.LayerResult{
				Path:    a.Path,
				Hash:    a.Hash,
				Key:     a.Key(opts.cfg.AssetPrefix),
				Entries: []string{kubectllayer.HelmEntry, kubectllayer.KubectlEntry},
			}
			return outputLayerResult(cmd.OutOrStdout(), result, opts.format(cmd, outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&bundle.Kubectl, "kubectl", "", "Path to the kubectl binary")
	cmd.Flags().StringVar(&bundle.Helm, "helm", "", "Path to the helm binary")
	cmd.Flags().StringVarP(&bundle.Output, "output", "o", "kubectl-layer.zip", "Output archive")
	_ = cmd.MarkFlagRequired("kubectl")
	_ = cmd.MarkFlagRequired("helm")

	return cmd
}

func newLayerInspectCmd(opts *rootOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Check the layout of a layer archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, problems := kubectllayer.Inspect(args[0])
			if entries == nil && problems != nil {
				return problems
			}
			a, err := asset.Open(args[0])
			if err != nil {
				return err
			}

			result := wetwire.LayerResult{Path: a.Path, Hash: a.Hash}
			for _, e := range entries {
				result.Entries = append(result.Entries, fmt.Sprintf("%s %s", e.Mode.Perm(), e.Name))
			}
			if err := outputLayerResult(cmd.OutOrStdout(), result, opts.format(cmd, outputFormat)); err != nil {
				return err
			}
			if problems != nil {
				return fmt.Errorf("invalid layer layout: %w", problems)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	return cmd
}

func newLayerPublishCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		bucket       string
		prefix       string
		region       string
		profile      string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "publish <archive>",
		Short: "Upload a layer archive to S3 under its content hash",
		Long: `Publish uploads the archive to s3://<bucket>/<prefix><sha256>.zip.
Nothing is uploaded when the object already exists.

Bucket, prefix, region and profile default to the config file and
WETWIRE_L1_* environment variables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kubectllayer.Inspect(args[0]); err != nil {
				return fmt.Errorf("invalid layer layout: %w", err)
			}
			a, err := asset.Open(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			var awsOpts []asset.AWSOption
			if p := stringOr(cmd, "profile", profile, opts.cfg.Profile); p != "" {
				awsOpts = append(awsOpts, asset.WithProfile(p))
			}
			if r := stringOr(cmd, "region", region, opts.cfg.Region); r != "" {
				awsOpts = append(awsOpts, asset.WithRegion(r))
			}
			awsCfg, err := asset.LoadAWSConfig(ctx, awsOpts...)
			if err != nil {
				return fmt.Errorf("loading AWS config: %w", err)
			}

			pub := asset.NewPublisher(
				asset.NewS3(awsCfg),
				stringOr(cmd, "bucket", bucket, opts.cfg.AssetBucket),
				stringOr(cmd, "prefix", prefix, opts.cfg.AssetPrefix),
			)
			loc, err := pub.Publish(ctx, a)
			if err != nil {
				return err
			}
			logging.GetLogger(ctx).Info("published layer",
				zap.String("bucket", loc.Bucket),
				zap.String("key", loc.Key),
				zap.Bool("skipped", loc.Skipped),
			)

			return outputLayerResult(cmd.OutOrStdout(), wetwire.LayerResult{
				Path:    a.Path,
				Hash:    a.Hash,
				Bucket:  loc.Bucket,
				Key:     loc.Key,
				Skipped: loc.Skipped,
			}, opts.format(cmd, outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVar(&profile, "profile", "", "AWS shared config profile")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Upload timeout (0 for none)")

	return cmd
}

func outputLayerResult(w io.Writer, result wetwire.LayerResult, format string) error {
	switch format {
	case "json":
		return printJSON(w, result)

	case "text":
		if result.Path != "" {
			fmt.Fprintf(w, "archive: %s\n", result.Path)
		}
		if result.Hash != "" {
			fmt.Fprintf(w, "sha256:  %s\n", result.Hash)
		}
		if result.Bucket != "" {
			status := "uploaded"
			if result.Skipped {
				status = "already present"
			}
			fmt.Fprintf(w, "s3:      s3://%s/%s (%s)\n", result.Bucket, result.Key, status)
		} else if result.Key != "" {
			fmt.Fprintf(w, "key:     %s\n", result.Key)
		}
		for _, e := range result.Entries {
			fmt.Fprintf(w, "  %s\n", e)
		}
		return nil

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
